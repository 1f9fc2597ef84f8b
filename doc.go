// SPDX-License-Identifier: GPL-3.0-or-later

// Package extract provides composable, type-safe extraction of operation
// inputs from HTTP requests.
//
// # Core Abstraction
//
// The package is built around two interfaces:
//
//	type PartsExtractor[T any, R Rejection] interface {
//		ExtractParts(parts *Parts) (T, R)
//	}
//
//	type RequestExtractor[T any, R Rejection] interface {
//		ExtractRequest(ctx context.Context, req *Request) (T, R)
//	}
//
// A [PartsExtractor] synchronously extracts a value from the request head
// ([*Parts]: method, URI, headers, and extensions). A [RequestExtractor]
// consumes the whole request, including the body, and may block. Each
// extractor has exactly one success mode (a value of type T) and one
// failure mode (a rejection of type R). A [Rejection] is an error whose
// zero value means "no rejection".
//
// # Composition
//
// Extractors compose into fixed-arity tuples:
//
//   - [Parts1] through [Parts8]: run parts extractors left to right against
//     the same head, stopping at the first rejection
//   - [Request1] and [Request2]: combine a request extractor with a parts
//     extractor (use a [Parts3] or larger tuple to extract more values)
//   - [FromParts]: use a parts extractor where a request extractor is expected
//
// The rejection of an N-member tuple is a [*Rejection2] through [*Rejection8]
// recording the 1-based position of the failing member and wrapping its
// rejection unchanged, so that [errors.As] reaches the member rejection.
//
// Extractors may borrow a head field or take it. Taking a field moves it
// out of the head: extractors running later observe it as absent. Taking
// the same field twice is a programming error and panics.
//
// # Available Extractors
//
// Head:
//   - [Header], [Headers], [RequestID], [URI]: header map and URI access
//   - [Query]: query string decoding (via gorilla/schema)
//   - [Extension]: typed values attached by middleware with [ContextWithExtension],
//     including [ConnectInfo] when the server uses [ConnContext]
//   - [RateLimit]: token bucket admission control
//   - [Unit]: the trivial extractor
//
// Body:
//   - [Body]: media type negotiation, size limit, decoding, and validation
//
// # Serving
//
// A [*Handler] binds an extractor and an operation ([Func]) to a [Protocol]:
// rejections and operation errors are converted to responses using [Render],
// which relies on [StatusCoder], [ErrorTyper], [ResponseHeaderer], and
// protocol specific [IntoResponse] implementations.
//
// # Endpoints
//
// On the client side, an [*EndpointTransport] sends requests to the
// [*Endpoint] produced by a resolver (see [NewEndpointFunc]). Endpoint
// failures are reported as [*ResolveEndpointError].
//
// # Observability
//
// All components support structured logging via [SLogger] (compatible with
// [log/slog]). By default, logging is disabled.
//
// Components emit span events (*Start/*Done pairs) recording timing and
// success/failure. All events include t (timestamp) and spanID. Completion
// events (*Done) additionally include t0 (start time), err, and errClass.
// Body read events are emitted at [slog.LevelDebug]; all other events use
// [slog.LevelInfo]. Use [NewMetrics] to also collect Prometheus metrics.
package extract
