// SPDX-License-Identifier: GPL-3.0-or-later

package extract

// ResolveEndpointError indicates that endpoint resolution failed.
//
// The error message is the human readable message passed to
// [NewResolveEndpointError]. The optional underlying cause is only
// reachable through [errors.Unwrap] and never appears in the message.
//
// The value is immutable: [ResolveEndpointError.WithSource] returns a copy.
type ResolveEndpointError struct {
	message string
	source  error
}

// NewResolveEndpointError creates a [*ResolveEndpointError] with the given message and no cause.
func NewResolveEndpointError(message string) *ResolveEndpointError {
	return &ResolveEndpointError{message: message}
}

// WithSource returns a copy of the error with the cause set to source
// and the message unchanged. A nil source clears the cause.
func (e *ResolveEndpointError) WithSource(source error) *ResolveEndpointError {
	return &ResolveEndpointError{message: e.message, source: source}
}

// Error implements [error].
func (e *ResolveEndpointError) Error() string {
	return e.message
}

// Unwrap returns the underlying cause or nil.
func (e *ResolveEndpointError) Unwrap() error {
	return e.source
}

// invalidEndpointErrorKind enumerates the ways applying an endpoint can fail.
type invalidEndpointErrorKind int

const (
	// endpointMustHaveScheme means the endpoint URI lacks a scheme.
	endpointMustHaveScheme invalidEndpointErrorKind = iota + 1

	// failedToConstructAuthority means combining the endpoint prefix
	// with the endpoint authority did not produce a valid authority.
	failedToConstructAuthority

	// failedToConstructURI means assembling the final URI failed.
	failedToConstructURI
)

// invalidEndpointError is the internal error produced by [*Endpoint.Apply].
//
// Only the errXxx constructors below create it.
type invalidEndpointError struct {
	kind   invalidEndpointErrorKind
	source error
}

func errEndpointMustHaveScheme() *invalidEndpointError {
	return &invalidEndpointError{kind: endpointMustHaveScheme}
}

func errFailedToConstructAuthority(source error) *invalidEndpointError {
	return &invalidEndpointError{kind: failedToConstructAuthority, source: source}
}

func errFailedToConstructURI(source error) *invalidEndpointError {
	return &invalidEndpointError{kind: failedToConstructURI, source: source}
}

// Error implements [error].
func (e *invalidEndpointError) Error() string {
	switch e.kind {
	case endpointMustHaveScheme:
		return "endpoint must contain a valid scheme"
	case failedToConstructAuthority:
		return "endpoint must contain a valid authority when combined with endpoint prefix"
	default:
		return "failed to construct URI"
	}
}

// Unwrap returns the underlying cause, which is nil for a missing scheme.
func (e *invalidEndpointError) Unwrap() error {
	return e.source
}

// resolveError lifts e into the public error type, keeping e as the cause.
func (e *invalidEndpointError) resolveError() *ResolveEndpointError {
	return NewResolveEndpointError(e.Error()).WithSource(e)
}
