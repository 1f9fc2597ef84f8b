// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimit(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig()
	cfg.TimeNow = func() time.Time { return now }

	t.Run("allows a burst then rejects", func(t *testing.T) {
		rl := NewRateLimit(cfg, rate.Every(2*time.Second), 2)
		parts := newTestParts("/", nil)

		_, r1 := rl.ExtractParts(parts)
		_, r2 := rl.ExtractParts(parts)
		_, r3 := rl.ExtractParts(parts)

		assert.Nil(t, r1)
		assert.Nil(t, r2)
		require.NotNil(t, r3)
		assert.Equal(t, 2*time.Second, r3.RetryAfter)
		assert.Equal(t, http.StatusTooManyRequests, r3.StatusCode())
		assert.Equal(t, ErrorTypeThrottling, r3.ErrorType())
		assert.Equal(t, "2", r3.ResponseHeader().Get("Retry-After"))
	})

	t.Run("a rejected request does not consume tokens", func(t *testing.T) {
		clock := now
		cfg := NewConfig()
		cfg.TimeNow = func() time.Time { return clock }
		rl := NewRateLimit(cfg, rate.Every(time.Second), 1)
		parts := newTestParts("/", nil)

		_, r1 := rl.ExtractParts(parts)
		_, r2 := rl.ExtractParts(parts)
		clock = clock.Add(time.Second)
		_, r3 := rl.ExtractParts(parts)

		assert.Nil(t, r1)
		assert.NotNil(t, r2)
		assert.Nil(t, r3)
	})

	t.Run("zero burst never admits", func(t *testing.T) {
		rl := NewRateLimit(cfg, rate.Every(time.Second), 0)

		_, rejection := rl.ExtractParts(newTestParts("/", nil))

		require.NotNil(t, rejection)
		assert.Equal(t, time.Duration(0), rejection.RetryAfter)
		assert.Equal(t, "", rejection.ResponseHeader().Get("Retry-After"))
	})

	t.Run("keyed by remote address", func(t *testing.T) {
		rl := NewRateLimit(cfg, rate.Every(time.Hour), 1)
		rl.KeyFunc = RemoteAddrKey
		newParts := func(addr string) *Parts {
			parts := newTestParts("/", nil)
			InsertExtension(parts.Extensions(), ConnectInfo{RemoteAddr: addr})
			return parts
		}

		_, r1 := rl.ExtractParts(newParts("10.0.0.1:1000"))
		_, r2 := rl.ExtractParts(newParts("10.0.0.2:1000"))
		_, r3 := rl.ExtractParts(newParts("10.0.0.1:1000"))

		assert.Nil(t, r1)
		assert.Nil(t, r2)
		assert.NotNil(t, r3)
	})
}
