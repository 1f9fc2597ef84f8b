// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import "net/http"

// StatusCoder is implemented by rejections and errors that map to a
// specific HTTP status code.
//
// [Render] finds the StatusCoder wrapped by a tuple rejection using
// [errors.As], so tuple rejections need not implement it.
type StatusCoder interface {
	StatusCode() int
}

// ErrorTyper is implemented by rejections and errors that carry a
// protocol level error type (e.g., "SerializationException").
type ErrorTyper interface {
	ErrorType() string
}

// Error types used by the rejections of this package.
const (
	ErrorTypeInternalFailure      = "InternalFailure"
	ErrorTypeSerialization        = "SerializationException"
	ErrorTypeValidation           = "ValidationException"
	ErrorTypeUnsupportedMediaType = "UnsupportedMediaTypeException"
	ErrorTypeRequestTooLarge      = "RequestEntityTooLargeException"
	ErrorTypeThrottling           = "ThrottlingException"
)

// ResponseHeaderer is implemented by rejections and errors that add
// headers to the error response (e.g., Retry-After).
type ResponseHeaderer interface {
	ResponseHeader() http.Header
}
