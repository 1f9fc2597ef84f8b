// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"fmt"
	"net/http"
	"reflect"
)

// Extension is the [PartsExtractor] moving the value of type T out of the
// request extensions.
//
// Upstream middleware attaches the value using [ContextWithExtension]. When
// the value is missing, the extractor rejects with [*MissingExtension],
// which renders as an internal failure: a missing extension means the
// server is misconfigured, not that the client misbehaved.
type Extension[T any] struct{}

var _ PartsExtractor[ConnectInfo, *MissingExtension] = Extension[ConnectInfo]{}

// ExtractParts implements [PartsExtractor].
func (Extension[T]) ExtractParts(parts *Parts) (T, *MissingExtension) {
	if ext := parts.Extensions(); ext != nil {
		if value, found := RemoveExtension[T](ext); found {
			return value, nil
		}
	}
	var zero T
	return zero, &MissingExtension{Type: reflect.TypeFor[T]().String()}
}

// MissingExtension is the rejection of [Extension].
type MissingExtension struct {
	// Type is the name of the missing type.
	Type string
}

// Error implements [error].
func (r *MissingExtension) Error() string {
	return fmt.Sprintf("missing request extension of type %s", r.Type)
}

// StatusCode implements [StatusCoder].
func (r *MissingExtension) StatusCode() int {
	return http.StatusInternalServerError
}

// ErrorType implements [ErrorTyper].
func (r *MissingExtension) ErrorType() string {
	return ErrorTypeInternalFailure
}
