// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closeCountingBody is an [io.ReadCloser] counting Close calls.
type closeCountingBody struct {
	io.Reader
	closed atomic.Int64
	done   chan struct{}
}

func newCloseCountingBody(data string) *closeCountingBody {
	return &closeCountingBody{Reader: strings.NewReader(data), done: make(chan struct{}, 4)}
}

func (b *closeCountingBody) Close() error {
	b.closed.Add(1)
	b.done <- struct{}{}
	return nil
}

// Reading goes through and closing the wrapper closes the underlying body.
func TestCancelWatchBodyDelegates(t *testing.T) {
	body := newCloseCountingBody("abc")

	wrapped := cancelWatchBody(context.Background(), body)
	data, err := io.ReadAll(wrapped)

	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
	require.NoError(t, wrapped.Close())
	assert.Equal(t, int64(1), body.closed.Load())
}

// Cancelling the context closes the underlying body.
func TestCancelWatchBodyClosesOnCancel(t *testing.T) {
	body := newCloseCountingBody("")
	ctx, cancel := context.WithCancel(context.Background())

	cancelWatchBody(ctx, body)

	select {
	case <-body.done:
		t.Fatal("body should not be closed yet")
	default:
	}

	cancel()

	select {
	case <-body.done:
	case <-time.After(time.Second):
		t.Fatal("body not closed after cancel")
	}
}

// Closing the wrapper unregisters the watcher so that a subsequent
// cancellation does not close the underlying body a second time.
func TestCancelWatchBodyCloseUnregistersWatcher(t *testing.T) {
	body := newCloseCountingBody("")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapped := cancelWatchBody(ctx, body)
	require.NoError(t, wrapped.Close())
	assert.Equal(t, int64(1), body.closed.Load())

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), body.closed.Load())
}
