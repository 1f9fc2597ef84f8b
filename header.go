// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

// Header is the [PartsExtractor] borrowing the value of a named header.
//
// The extractor rejects with [*HeaderRejection] when the header is missing
// and Required is set, or when its value contains characters that are not
// allowed in an HTTP field value.
type Header struct {
	// Name is the header name.
	Name string

	// Required causes a rejection when the header is missing.
	Required bool
}

var _ PartsExtractor[string, *HeaderRejection] = Header{}

// ExtractParts implements [PartsExtractor].
func (h Header) ExtractParts(parts *Parts) (string, *HeaderRejection) {
	values := parts.Headers().Values(h.Name)
	if len(values) <= 0 {
		if h.Required {
			return "", &HeaderRejection{Name: h.Name, Reason: "missing"}
		}
		return "", nil
	}
	value := values[0]
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", &HeaderRejection{Name: h.Name, Reason: "invalid value"}
	}
	return value, nil
}

// HeaderRejection is the rejection of header extractors.
type HeaderRejection struct {
	// Name is the header name.
	Name string

	// Reason describes what is wrong with the header.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Error implements [error].
func (r *HeaderRejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("header %s: %s: %s", r.Name, r.Reason, r.Err.Error())
	}
	return fmt.Sprintf("header %s: %s", r.Name, r.Reason)
}

// Unwrap returns the underlying error.
func (r *HeaderRejection) Unwrap() error {
	return r.Err
}

// StatusCode implements [StatusCoder].
func (r *HeaderRejection) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorType implements [ErrorTyper].
func (r *HeaderRejection) ErrorType() string {
	return ErrorTypeSerialization
}

// Headers is the [PartsExtractor] taking the whole header map.
//
// Extractors running after Headers observe the headers as absent.
type Headers struct{}

var _ PartsExtractor[http.Header, Infallible] = Headers{}

// ExtractParts implements [PartsExtractor].
func (Headers) ExtractParts(parts *Parts) (http.Header, Infallible) {
	return parts.TakeHeaders(), Infallible{}
}

// RequestIDHeader is the header carrying the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestID is the [PartsExtractor] parsing the [RequestIDHeader] as a UUID.
//
// When the header is missing, the extractor mints a new UUIDv7. A
// header that is not a valid UUID is rejected with [*HeaderRejection].
type RequestID struct{}

var _ PartsExtractor[uuid.UUID, *HeaderRejection] = RequestID{}

// ExtractParts implements [PartsExtractor].
func (RequestID) ExtractParts(parts *Parts) (uuid.UUID, *HeaderRejection) {
	value := parts.Headers().Get(RequestIDHeader)
	if value == "" {
		return runtimex.PanicOnError1(uuid.NewV7()), nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, &HeaderRejection{Name: RequestIDHeader, Reason: "invalid request ID", Err: err}
	}
	return id, nil
}

// URI is the [PartsExtractor] returning a copy of the request URI.
//
// The copy is nil when a previous extractor has taken the URI.
type URI struct{}

var _ PartsExtractor[*url.URL, Infallible] = URI{}

// ExtractParts implements [PartsExtractor].
func (URI) ExtractParts(parts *Parts) (*url.URL, Infallible) {
	uri := parts.URI()
	if uri == nil {
		return nil, Infallible{}
	}
	dup := *uri
	return &dup, Infallible{}
}
