// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"io"
)

// cancelWatchBody arranges for body to be closed when ctx is done
// (cancelled or deadline exceeded), so that a [*Body] extraction blocked
// reading from a slow client returns promptly.
//
// Closing the returned body unregisters the context watcher and closes
// the underlying body, so no goroutine outlives the extraction even if
// the context is never cancelled.
//
// The underlying body must tolerate a Close concurrent with a Read, which
// is the case for [*http.Request] bodies served by [net/http].
func cancelWatchBody(ctx context.Context, body io.ReadCloser) io.ReadCloser {
	stop := context.AfterFunc(ctx, func() {
		body.Close()
	})
	return &cancelWatchedBody{ReadCloser: body, stop: stop}
}

// cancelWatchedBody wraps an [io.ReadCloser] with a context cancellation watcher.
type cancelWatchedBody struct {
	io.ReadCloser
	stop func() bool
}

// Close unregisters the context watcher and closes the underlying body.
func (b *cancelWatchedBody) Close() error {
	b.stop()
	return b.ReadCloser.Close()
}
