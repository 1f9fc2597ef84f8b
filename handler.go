// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"log/slog"
	"net/http"
	"time"
)

// Handler is the [http.Handler] serving one operation.
//
// For each request, the handler:
//
//  1. adapts the [*http.Request] using [NewRequest];
//
//  2. runs Extractor to obtain the operation input;
//
//  3. on rejection, renders the rejection for Protocol using [Render];
//
//  4. otherwise, calls Operation and writes its [*Response], rendering
//     the operation error, if any, using [Render].
//
// The handler emits extractStart/extractDone and operationStart/operationDone
// span events, all tagged with a span ID created using [NewSpanID].
//
// Construct using [NewHandler].
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Handler.ServeHTTP].
type Handler[P Protocol, In any, R Rejection] struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewHandler] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Extractor extracts the operation input.
	//
	// Set by [NewHandler] to the user-provided extractor.
	Extractor RequestExtractor[In, R]

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewHandler] to the user-provided logger.
	Logger SLogger

	// Metrics collects extraction metrics; nil disables collection.
	//
	// Set by [NewHandler] to nil.
	Metrics *Metrics

	// Name is the operation name used in logs and metrics.
	//
	// Set by [NewHandler] to the user-provided name.
	Name string

	// Operation is the operation to run.
	//
	// Set by [NewHandler] to the user-provided operation.
	Operation Func[In, *Response]

	// Protocol is the protocol used to render errors.
	//
	// Set by [NewHandler] to the user-provided protocol.
	Protocol P

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewHandler] from [Config.TimeNow].
	TimeNow func() time.Time
}

// NewHandler returns a new [*Handler].
//
// The cfg argument contains the common configuration.
//
// The proto argument is the [Protocol] used to render errors.
//
// The name argument is the operation name.
//
// The extractor argument extracts the operation input.
//
// The op argument is the operation.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewHandler[P Protocol, In any, R Rejection](
	cfg *Config,
	proto P,
	name string,
	extractor RequestExtractor[In, R],
	op Func[In, *Response],
	logger SLogger,
) *Handler[P, In, R] {
	return &Handler[P, In, R]{
		ErrClassifier: cfg.ErrClassifier,
		Extractor:     extractor,
		Logger:        logger,
		Metrics:       nil,
		Name:          name,
		Operation:     op,
		Protocol:      proto,
		TimeNow:       cfg.TimeNow,
	}
}

var _ http.Handler = &Handler[RestJSON1, Unit, Infallible]{}

// ServeHTTP implements [http.Handler].
func (h *Handler[P, In, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Create the span
	spanID := NewSpanID()
	ctx := ContextWithSpanID(r.Context(), spanID)
	req := NewRequest(r)

	// 2. Extract the operation input
	t0 := h.TimeNow()
	h.logExtractStart(spanID, r, t0)
	input, rejection := h.Extractor.ExtractRequest(ctx, req)

	// 3. Handle the rejection
	if Rejected(rejection) {
		resp := Render(h.Protocol, rejection)
		h.logExtractDone(spanID, r, t0, rejection)
		h.Metrics.observeExtraction(h.Name, h.Protocol.ProtocolName(), h.TimeNow().Sub(t0), rejection, resp.StatusCode)
		h.write(spanID, w, resp)
		return
	}
	h.logExtractDone(spanID, r, t0, nil)
	h.Metrics.observeExtraction(h.Name, h.Protocol.ProtocolName(), h.TimeNow().Sub(t0), nil, 0)

	// 4. Run the operation
	t0 = h.TimeNow()
	h.logOperationStart(spanID, t0)
	resp, err := h.Operation.Call(ctx, input)
	if err == nil && resp == nil {
		resp = NewResponse(http.StatusNoContent, "", nil)
	}
	if err != nil {
		resp = Render(h.Protocol, err)
	}
	h.logOperationDone(spanID, t0, resp.StatusCode, err)
	h.write(spanID, w, resp)
}

func (h *Handler[P, In, R]) write(spanID string, w http.ResponseWriter, resp *Response) {
	if err := resp.Write(w); err != nil {
		h.Logger.Debug(
			"responseWriteFailed",
			slog.Any("err", err),
			slog.String("errClass", h.ErrClassifier.Classify(err)),
			slog.String("spanID", spanID),
			slog.Time("t", h.TimeNow()),
		)
	}
}

func (h *Handler[P, In, R]) logExtractStart(spanID string, r *http.Request, t0 time.Time) {
	h.Logger.Info(
		"extractStart",
		slog.String("httpMethod", r.Method),
		slog.String("httpUrl", r.URL.String()),
		slog.String("operation", h.Name),
		slog.String("protocol", h.Protocol.ProtocolName()),
		slog.String("remoteAddr", r.RemoteAddr),
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func (h *Handler[P, In, R]) logExtractDone(spanID string, r *http.Request, t0 time.Time, err error) {
	h.Logger.Info(
		"extractDone",
		slog.Any("err", err),
		slog.String("errClass", h.ErrClassifier.Classify(err)),
		slog.String("httpMethod", r.Method),
		slog.String("httpUrl", r.URL.String()),
		slog.String("operation", h.Name),
		slog.Int("position", rejectionPosition(err)),
		slog.String("protocol", h.Protocol.ProtocolName()),
		slog.String("remoteAddr", r.RemoteAddr),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", h.TimeNow()),
	)
}

func (h *Handler[P, In, R]) logOperationStart(spanID string, t0 time.Time) {
	h.Logger.Info(
		"operationStart",
		slog.String("operation", h.Name),
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func (h *Handler[P, In, R]) logOperationDone(spanID string, t0 time.Time, status int, err error) {
	h.Logger.Info(
		"operationDone",
		slog.Any("err", err),
		slog.String("errClass", h.ErrClassifier.Classify(err)),
		slog.Int("httpResponseStatusCode", status),
		slog.String("operation", h.Name),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", h.TimeNow()),
	)
}
