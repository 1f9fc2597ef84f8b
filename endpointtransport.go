// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"log/slog"
	"net/http"
	"time"
)

// EndpointTransport is an [http.RoundTripper] sending each request to
// the [*Endpoint] produced by its resolver.
//
// For each round trip, the transport resolves the endpoint, applies it to
// a clone of the request URL using [*Endpoint.Apply], and delegates to Base.
// A resolution or application failure is returned as the round trip error.
//
// The transport emits endpointRoundTripStart/endpointRoundTripDone span
// events around each round trip, an endpointQueryIgnored event when the
// endpoint carries a query, and lazily wraps the response body to emit
// responseBodyReadStart/responseBodyReadDone events.
//
// Construct using [NewEndpointTransport].
//
// All fields are safe to modify after construction but before first use.
type EndpointTransport struct {
	// Base performs the actual round trips.
	//
	// Set by [NewEndpointTransport] to [http.DefaultTransport].
	Base http.RoundTripper

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewEndpointTransport] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewEndpointTransport] to the user-provided logger.
	Logger SLogger

	// Prefix is the optional host prefix applied to mutable endpoints.
	//
	// Set by [NewEndpointTransport] to nil.
	Prefix *EndpointPrefix

	// Resolver resolves the endpoint of each request.
	//
	// Set by [NewEndpointTransport] to the user-provided resolver.
	Resolver Func[Unit, *Endpoint]

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewEndpointTransport] from [Config.TimeNow].
	TimeNow func() time.Time
}

// NewEndpointTransport returns a new [*EndpointTransport].
//
// The cfg argument contains the common configuration.
//
// The resolver argument resolves the endpoint (see [NewEndpointFunc]).
//
// The logger argument is the [SLogger] to use for structured logging.
func NewEndpointTransport(cfg *Config, resolver Func[Unit, *Endpoint], logger SLogger) *EndpointTransport {
	return &EndpointTransport{
		Base:          http.DefaultTransport,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Prefix:        nil,
		Resolver:      resolver,
		TimeNow:       cfg.TimeNow,
	}
}

var _ http.RoundTripper = &EndpointTransport{}

// RoundTrip implements [http.RoundTripper].
func (et *EndpointTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// 1. Log before the round trip
	spanID := NewSpanID()
	t0 := et.TimeNow()
	deadline, _ := req.Context().Deadline()
	et.logRoundTripStart(spanID, req, t0, deadline)

	// 2. Resolve and apply the endpoint
	outreq, err := et.rewrite(spanID, req)

	// 3. Perform the round trip
	var resp *http.Response
	if err == nil {
		resp, err = et.Base.RoundTrip(outreq)
	}

	// 4. Log after the round trip
	et.logRoundTripDone(spanID, req, outreq, t0, deadline, resp, err)

	// 5. On error, return immediately
	if err != nil {
		if req.Body != nil && outreq == nil {
			req.Body.Close()
		}
		return nil, err
	}

	// 6. Wrap the response body with lazy structured logging
	resp.Body = httpBodyWrap(
		resp.Body,
		et.ErrClassifier,
		et.Logger,
		"responseBody",
		spanID,
		et.TimeNow,
	)
	return resp, nil
}

// rewrite returns a clone of req targeting the resolved endpoint.
func (et *EndpointTransport) rewrite(spanID string, req *http.Request) (*http.Request, error) {
	endpoint, err := et.Resolver.Call(req.Context(), Unit{})
	if err != nil {
		return nil, err
	}
	if query := endpoint.URI().RawQuery; query != "" {
		et.Logger.Info(
			"endpointQueryIgnored",
			slog.String("endpointQuery", query),
			slog.String("spanID", spanID),
			slog.Time("t", et.TimeNow()),
		)
	}
	outreq := req.Clone(req.Context())
	if err := endpoint.Apply(outreq.URL, et.Prefix); err != nil {
		return nil, err
	}
	outreq.Host = ""
	return outreq, nil
}

func (et *EndpointTransport) logRoundTripStart(spanID string, req *http.Request, t0 time.Time, deadline time.Time) {
	et.Logger.Info(
		"endpointRoundTripStart",
		slog.Time("deadline", deadline),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.Any("httpRequestHeaders", req.Header),
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func (et *EndpointTransport) logRoundTripDone(spanID string, req, outreq *http.Request,
	t0 time.Time, deadline time.Time, resp *http.Response, err error) {
	var (
		endpointURL string
		statusCode  int
		headers     http.Header
	)
	if outreq != nil {
		endpointURL = outreq.URL.String()
	}
	if resp != nil {
		statusCode = resp.StatusCode
		headers = resp.Header
	}
	et.Logger.Info(
		"endpointRoundTripDone",
		slog.Time("deadline", deadline),
		slog.String("endpointUrl", endpointURL),
		slog.Any("err", err),
		slog.String("errClass", et.ErrClassifier.Classify(err)),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.Any("httpRequestHeaders", req.Header),
		slog.Any("httpResponseHeaders", headers),
		slog.Int("httpResponseStatusCode", statusCode),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", et.TimeNow()),
	)
}
