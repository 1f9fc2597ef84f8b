// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"

	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// A [*Handler] creates a span for each request it serves and attaches
// the span ID to every log event emitted while serving it.
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}

type spanIDContextKey struct{}

// ContextWithSpanID returns a copy of ctx carrying spanID.
//
// A [*Handler] uses this function so that extractors reading the body
// tag their log events with the span of the request.
func ContextWithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, spanIDContextKey{}, spanID)
}

// spanIDFromContext returns the span ID carried by ctx or "".
func spanIDFromContext(ctx context.Context) string {
	spanID, _ := ctx.Value(spanIDContextKey{}).(string)
	return spanID
}
