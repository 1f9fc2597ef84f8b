// SPDX-License-Identifier: GPL-3.0-or-later

package extract

//go:generate go run ./internal/gentuple -o tuple_gen.go

import (
	"context"
	"fmt"
)

// Rejection is the constraint satisfied by extraction failures.
//
// A rejection is an [error] whose zero value means "no rejection". Pointer
// types (e.g., [*HeaderRejection]) and the [error] interface itself satisfy
// this constraint naturally, since their zero value is nil.
type Rejection interface {
	comparable
	error
}

// Rejected returns whether r signals a failure, i.e., whether it is not
// the zero value of its type.
func Rejected[R Rejection](r R) bool {
	var zero R
	return r != zero
}

// PartsExtractor extracts a value of type T from a request head.
//
// Extraction is synchronous and never touches the body. The extractor may
// borrow or take fields of the head; extractors composed with [Parts2],
// [Parts3], etc. run left to right and each one observes the head as left
// by its predecessor.
//
// On failure, the extractor returns a non-zero rejection of type R.
type PartsExtractor[T any, R Rejection] interface {
	ExtractParts(parts *Parts) (T, R)
}

// PartsFunc adapts a function to the [PartsExtractor] interface.
type PartsFunc[T any, R Rejection] func(parts *Parts) (T, R)

// ExtractParts implements [PartsExtractor].
func (f PartsFunc[T, R]) ExtractParts(parts *Parts) (T, R) {
	return f(parts)
}

// RequestExtractor extracts a value of type T consuming a whole request.
//
// Extraction may block while reading the body; the context allows the
// caller to abandon it. Exactly one RequestExtractor runs per request.
//
// On failure, the extractor returns a non-zero rejection of type R.
type RequestExtractor[T any, R Rejection] interface {
	ExtractRequest(ctx context.Context, req *Request) (T, R)
}

// RequestFunc adapts a function to the [RequestExtractor] interface.
type RequestFunc[T any, R Rejection] func(ctx context.Context, req *Request) (T, R)

// ExtractRequest implements [RequestExtractor].
func (f RequestFunc[T, R]) ExtractRequest(ctx context.Context, req *Request) (T, R) {
	return f(ctx, req)
}

// Parts1 is the single-member tuple of [PartsExtractor].
//
// It delegates transparently: the value and the rejection are those of e.
func Parts1[T any, R Rejection](e PartsExtractor[T, R]) PartsExtractor[T, R] {
	return e
}

// Request1 is the single-member tuple of [RequestExtractor].
//
// It delegates transparently: the value and the rejection are those of e.
func Request1[T any, R Rejection](e RequestExtractor[T, R]) RequestExtractor[T, R] {
	return e
}

// FromParts lifts a [PartsExtractor] into a [RequestExtractor].
//
// The returned extractor runs e against the request head and leaves
// the body untouched.
func FromParts[T any, R Rejection](e PartsExtractor[T, R]) RequestExtractor[T, R] {
	return &fromParts[T, R]{e}
}

type fromParts[T any, R Rejection] struct {
	e PartsExtractor[T, R]
}

// ExtractRequest implements [RequestExtractor].
func (fp *fromParts[T, R]) ExtractRequest(ctx context.Context, req *Request) (T, R) {
	return fp.e.ExtractParts(req.Parts)
}

// Request2 composes a [RequestExtractor] and a [PartsExtractor] into a
// [RequestExtractor] of [Tuple2].
//
// The head is split off first and e2 runs against it immediately. Then
// e1 runs against the reassembled request, thus observing the head as
// left by e2. Both members always run. When both reject, the rejection
// of the first-declared member wins, so the result is deterministic.
//
// To extract more than two values, use a [Parts3] (or larger) tuple as e2.
func Request2[T1, T2 any, R1, R2 Rejection](
	e1 RequestExtractor[T1, R1],
	e2 PartsExtractor[T2, R2],
) RequestExtractor[Tuple2[T1, T2], *Rejection2[R1, R2]] {
	return &request2[T1, T2, R1, R2]{e1, e2}
}

type request2[T1, T2 any, R1, R2 Rejection] struct {
	e1 RequestExtractor[T1, R1]
	e2 PartsExtractor[T2, R2]
}

// ExtractRequest implements [RequestExtractor].
func (rp *request2[T1, T2, R1, R2]) ExtractRequest(ctx context.Context, req *Request) (Tuple2[T1, T2], *Rejection2[R1, R2]) {
	parts, body := req.Split()
	v2, r2 := rp.e2.ExtractParts(parts)
	v1, r1 := rp.e1.ExtractRequest(ctx, JoinRequest(parts, body))
	if Rejected(r1) {
		return Tuple2[T1, T2]{}, &Rejection2[R1, R2]{pos: 1, r1: r1}
	}
	if Rejected(r2) {
		return Tuple2[T1, T2]{}, &Rejection2[R1, R2]{pos: 2, r2: r2}
	}
	return Tuple2[T1, T2]{V1: v1, V2: v2}, nil
}

// rejectionMessage formats the message of a tuple rejection.
func rejectionMessage(pos int, err error) string {
	return fmt.Sprintf("extractor #%d: %s", pos, err.Error())
}
