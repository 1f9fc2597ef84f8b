// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// httpBodyWrap wraps an HTTP body so that we emit structured log events
// lazily: <name>ReadStart on the first Read, and <name>ReadDone on Close
// (only if at least one Read happened).
//
// The name is "requestBody" for bodies read by [*Body] and "responseBody"
// for bodies returned by [*EndpointTransport].
func httpBodyWrap(
	body io.ReadCloser,
	errClass ErrClassifier,
	logger SLogger,
	name string,
	spanID string,
	timeNow func() time.Time,
) io.ReadCloser {
	return &httpBodyWrapper{
		body:     body,
		errClass: errClass,
		logger:   logger,
		name:     name,
		spanID:   spanID,
		timeNow:  timeNow,
	}
}

type httpBodyWrapper struct {
	// body is the actual body.
	body io.ReadCloser

	// closeOnce ensures that Close has "once" semantics.
	closeOnce sync.Once

	// count is the number of bytes read so far.
	count atomic.Int64

	// didRead tracks whether at least one Read happened.
	didRead atomic.Bool

	// errClass is the err classifier in use.
	errClass ErrClassifier

	// logger is the [SLogger] in use.
	logger SLogger

	// name prefixes the log event names.
	name string

	// readErr is the first non-EOF read error.
	readErr atomic.Pointer[error]

	// readOnce ensures we log the start event only once.
	readOnce sync.Once

	// spanID is the span the body belongs to.
	spanID string

	// t0 is the time when we started reading the body.
	t0 time.Time

	// timeNow mocks [time.Now].
	timeNow func() time.Time
}

var _ io.ReadCloser = &httpBodyWrapper{}

// Close implements [io.ReadCloser].
func (b *httpBodyWrapper) Close() (err error) {
	b.closeOnce.Do(func() {
		err = b.body.Close()
		if b.didRead.Load() { // acquire: t0 is visible if this returns true
			logErr := err
			if ep := b.readErr.Load(); ep != nil {
				logErr = *ep
			}
			b.logger.Debug(
				b.name+"ReadDone",
				slog.Int64("bytes", b.count.Load()),
				slog.Any("err", logErr),
				slog.String("errClass", b.errClass.Classify(logErr)),
				slog.String("spanID", b.spanID),
				slog.Time("t0", b.t0),
				slog.Time("t", b.timeNow()),
			)
		}
	})
	return
}

// Read implements [io.ReadCloser].
func (b *httpBodyWrapper) Read(buffer []byte) (int, error) {
	b.readOnce.Do(func() {
		b.t0 = b.timeNow()    // write t0 BEFORE the atomic store (release)
		b.didRead.Store(true) // release: makes t0 visible to Close
		b.logger.Debug(
			b.name+"ReadStart",
			slog.String("spanID", b.spanID),
			slog.Time("t", b.t0),
		)
	})
	count, err := b.body.Read(buffer)
	b.count.Add(int64(count))
	if err != nil && err != io.EOF {
		b.readErr.CompareAndSwap(nil, &err)
	}
	return count, err
}
