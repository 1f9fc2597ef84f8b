// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Body is the [RequestExtractor] decoding the request body into a T.
//
// The extractor works as follows:
//
//  1. select the [Decoder] matching the Content-Type header;
//
//  2. read at most MaxBodyBytes from the body, giving up as soon as the
//     context is done;
//
//  3. decode the body into a T;
//
//  4. when T is a struct (or a pointer to a struct), validate it using the
//     "validate" struct tags.
//
// Each failure is reported as a [*BodyRejection] of the corresponding kind.
//
// Construct using [NewBody].
//
// All fields are safe to modify after construction but before first use.
type Body[T any] struct {
	// Decoders lists the supported media types.
	//
	// Set by [NewBody] to [DefaultDecoders].
	Decoders []Decoder

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewBody] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewBody] to the user-provided logger.
	Logger SLogger

	// MaxBodyBytes is the largest body we accept.
	//
	// Set by [NewBody] from [Config.MaxBodyBytes].
	MaxBodyBytes int64

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewBody] from [Config.TimeNow].
	TimeNow func() time.Time

	// Validate validates the decoded value; nil disables validation.
	//
	// Set by [NewBody] to the result of [NewValidate].
	Validate *validator.Validate
}

// NewBody returns a new [*Body] for T.
//
// The cfg argument contains the common configuration.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewBody[T any](cfg *Config, logger SLogger) *Body[T] {
	return &Body[T]{
		Decoders:      DefaultDecoders(),
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		MaxBodyBytes:  cfg.MaxBodyBytes,
		TimeNow:       cfg.TimeNow,
		Validate:      NewValidate(),
	}
}

// NewValidate returns the [*validator.Validate] used by [NewBody].
//
// Field names in validation errors use the name from the "json" struct
// tag, falling back to the "xml" and "yaml" tags, and finally to the Go name.
func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "xml", "yaml"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return validate
}

var _ RequestExtractor[struct{}, *BodyRejection] = &Body[struct{}]{}

// ExtractRequest implements [RequestExtractor].
func (b *Body[T]) ExtractRequest(ctx context.Context, req *Request) (T, *BodyRejection) {
	var value T

	// 1. Select the decoder
	headers := req.Parts.Headers()
	if headers == nil {
		req.Body.Close()
		return value, &BodyRejection{Kind: BodyHeadersUnavailable}
	}
	decoder, mediaType, ok := b.decoder(headers)
	if !ok {
		req.Body.Close()
		return value, &BodyRejection{Kind: BodyUnsupportedMediaType, MediaType: mediaType}
	}

	// 2. Read the body observing the context
	body := httpBodyWrap(
		cancelWatchBody(ctx, req.Body),
		b.ErrClassifier,
		b.Logger,
		"requestBody",
		spanIDFromContext(ctx),
		b.TimeNow,
	)
	data, err := io.ReadAll(io.LimitReader(body, readLimit(b.MaxBodyBytes)))
	body.Close()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return value, &BodyRejection{Kind: BodyReadFailed, MediaType: mediaType, Err: err}
	}
	if int64(len(data)) > b.MaxBodyBytes {
		return value, &BodyRejection{Kind: BodyTooLarge, MediaType: mediaType}
	}

	// 3. Decode
	if err := decoder.Decode(data, &value); err != nil {
		var zero T
		return zero, &BodyRejection{Kind: BodyMalformed, MediaType: mediaType, Err: err}
	}

	// 4. Validate
	if err := b.validate(value); err != nil {
		var zero T
		return zero, newInvalidBodyRejection(mediaType, err)
	}
	return value, nil
}

// readLimit returns how many bytes to read to detect a body larger than maxBytes.
func readLimit(maxBytes int64) int64 {
	if maxBytes < math.MaxInt64 {
		return maxBytes + 1
	}
	return maxBytes
}

func (b *Body[T]) decoder(headers http.Header) (Decoder, string, bool) {
	contentType := headers.Get("Content-Type")
	if contentType == "" && len(b.Decoders) > 0 {
		decoder := b.Decoders[0]
		return decoder, decoder.MediaType(), true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, contentType, false
	}
	for _, decoder := range b.Decoders {
		if decoder.MediaType() == mediaType {
			return decoder, mediaType, true
		}
	}
	return nil, mediaType, false
}

func (b *Body[T]) validate(value T) error {
	if b.Validate == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return b.Validate.Struct(value)
}

// BodyRejectionKind is the kind of a [*BodyRejection].
type BodyRejectionKind int

const (
	// BodyUnsupportedMediaType means no [Decoder] handles the Content-Type.
	BodyUnsupportedMediaType BodyRejectionKind = iota + 1

	// BodyTooLarge means the body exceeds the configured maximum size.
	BodyTooLarge

	// BodyReadFailed means reading the body failed (e.g., the client went away).
	BodyReadFailed

	// BodyMalformed means the body does not decode into the target type.
	BodyMalformed

	// BodyInvalid means the decoded value fails validation.
	BodyInvalid

	// BodyHeadersUnavailable means an earlier extractor took the header
	// map, so the media type cannot be determined.
	BodyHeadersUnavailable
)

// String implements [fmt.Stringer].
func (k BodyRejectionKind) String() string {
	switch k {
	case BodyUnsupportedMediaType:
		return "unsupported media type"
	case BodyTooLarge:
		return "body too large"
	case BodyReadFailed:
		return "cannot read body"
	case BodyMalformed:
		return "malformed body"
	case BodyInvalid:
		return "invalid body"
	case BodyHeadersUnavailable:
		return "request headers not available"
	default:
		return "unknown body rejection"
	}
}

// BodyRejection is the rejection of [*Body].
type BodyRejection struct {
	// Kind is the kind of rejection.
	Kind BodyRejectionKind

	// MediaType is the request media type.
	MediaType string

	// Fields lists the fields failing validation (only for [BodyInvalid]).
	Fields []string

	// Err is the underlying error, if any.
	Err error
}

func newInvalidBodyRejection(mediaType string, err error) *BodyRejection {
	rejection := &BodyRejection{Kind: BodyInvalid, MediaType: mediaType, Err: err}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			field := verr.Namespace()
			if _, rest, found := strings.Cut(field, "."); found {
				field = rest
			}
			rejection.Fields = append(rejection.Fields, field+": "+verr.Tag())
		}
	}
	return rejection
}

// Error implements [error].
func (r *BodyRejection) Error() string {
	switch {
	case r.Kind == BodyUnsupportedMediaType:
		return fmt.Sprintf("%s: %q", r.Kind, r.MediaType)
	case len(r.Fields) > 0:
		return fmt.Sprintf("%s: %s", r.Kind, strings.Join(r.Fields, ", "))
	case r.Err != nil:
		return fmt.Sprintf("%s: %s", r.Kind, r.Err.Error())
	default:
		return r.Kind.String()
	}
}

// Unwrap returns the underlying error.
func (r *BodyRejection) Unwrap() error {
	return r.Err
}

// StatusCode implements [StatusCoder].
func (r *BodyRejection) StatusCode() int {
	switch r.Kind {
	case BodyUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case BodyTooLarge:
		return http.StatusRequestEntityTooLarge
	case BodyHeadersUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// ErrorType implements [ErrorTyper].
func (r *BodyRejection) ErrorType() string {
	switch r.Kind {
	case BodyUnsupportedMediaType:
		return ErrorTypeUnsupportedMediaType
	case BodyTooLarge:
		return ErrorTypeRequestTooLarge
	case BodyInvalid:
		return ErrorTypeValidation
	case BodyHeadersUnavailable:
		return ErrorTypeInternalFailure
	default:
		return ErrorTypeSerialization
	}
}
