// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/schema"
)

// Query is the [PartsExtractor] decoding the query string into a T.
//
// T must be a struct type. Fields are matched using the "query" struct
// tag (e.g., `query:"page"`) and unknown keys are ignored. A query that
// does not match T is rejected with [*QueryRejection].
//
// Construct using [NewQuery].
type Query[T any] struct {
	decoder *schema.Decoder
}

// NewQuery returns a new [*Query] for T.
func NewQuery[T any]() *Query[T] {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("query")
	return &Query[T]{decoder: decoder}
}

// ExtractParts implements [PartsExtractor].
func (q *Query[T]) ExtractParts(parts *Parts) (T, *QueryRejection) {
	var value T
	uri := parts.URI()
	if uri == nil {
		return value, &QueryRejection{Err: errors.New("request URI not available")}
	}
	if err := q.decoder.Decode(&value, uri.Query()); err != nil {
		var zero T
		return zero, newQueryRejection(err)
	}
	return value, nil
}

// QueryRejection is the rejection of [Query].
type QueryRejection struct {
	// Fields lists the query keys that could not be converted.
	Fields []string

	// Err is the underlying decoding error.
	Err error
}

func newQueryRejection(err error) *QueryRejection {
	rejection := &QueryRejection{Err: err}
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for _, entry := range multi {
			var conversion schema.ConversionError
			if errors.As(entry, &conversion) {
				rejection.Fields = append(rejection.Fields, conversion.Key)
			}
		}
		sort.Strings(rejection.Fields)
	}
	return rejection
}

// Error implements [error].
func (r *QueryRejection) Error() string {
	if len(r.Fields) > 0 {
		return fmt.Sprintf("malformed query parameters: %s", strings.Join(r.Fields, ", "))
	}
	return fmt.Sprintf("malformed query string: %s", r.Err.Error())
}

// Unwrap returns the underlying error.
func (r *QueryRejection) Unwrap() error {
	return r.Err
}

// StatusCode implements [StatusCoder].
func (r *QueryRejection) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorType implements [ErrorTyper].
func (r *QueryRejection) ErrorType() string {
	return ErrorTypeSerialization
}
