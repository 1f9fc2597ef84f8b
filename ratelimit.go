// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit is the [PartsExtractor] guarding an operation with a
// token bucket per key.
//
// By default there is a single bucket shared by all requests. Set KeyFunc
// to partition requests (e.g., by client address). A request arriving when
// its bucket is empty is rejected with [*RateLimited].
//
// Construct using [NewRateLimit].
type RateLimit struct {
	// KeyFunc maps a request head to its bucket key.
	//
	// Set by [NewRateLimit] to a function returning "".
	KeyFunc func(parts *Parts) string

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewRateLimit] from [Config.TimeNow].
	TimeNow func() time.Time

	burst    int
	limit    rate.Limit
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

// NewRateLimit returns a new [*RateLimit] allowing limit events per second
// with bursts of at most burst events.
func NewRateLimit(cfg *Config, limit rate.Limit, burst int) *RateLimit {
	return &RateLimit{
		KeyFunc:  func(parts *Parts) string { return "" },
		TimeNow:  cfg.TimeNow,
		burst:    burst,
		limit:    limit,
		limiters: make(map[string]*rate.Limiter),
	}
}

// RemoteAddrKey is a [RateLimit] KeyFunc using the remote address recorded
// in the [ConnectInfo] extension, without removing the extension.
func RemoteAddrKey(parts *Parts) string {
	if ext := parts.Extensions(); ext != nil {
		if info, found := GetExtension[ConnectInfo](ext); found {
			return info.RemoteAddr
		}
	}
	return ""
}

var _ PartsExtractor[Unit, *RateLimited] = &RateLimit{}

// ExtractParts implements [PartsExtractor].
func (rl *RateLimit) ExtractParts(parts *Parts) (Unit, *RateLimited) {
	now := rl.TimeNow()
	reservation := rl.limiter(rl.KeyFunc(parts)).ReserveN(now, 1)
	if !reservation.OK() {
		return Unit{}, &RateLimited{}
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Unit{}, &RateLimited{RetryAfter: delay}
	}
	return Unit{}, nil
}

// TODO(bassosimone): evict limiters not used for a while, since keying by
// client address lets the map grow with the number of distinct clients.
func (rl *RateLimit) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, found := rl.limiters[key]
	if !found {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// RateLimited is the rejection of [*RateLimit].
type RateLimited struct {
	// RetryAfter is how long to wait before the bucket has a token
	// again, or zero when the request can never be satisfied.
	RetryAfter time.Duration
}

// Error implements [error].
func (r *RateLimited) Error() string {
	return fmt.Sprintf("rate limit exceeded; retry after %s", r.RetryAfter)
}

// StatusCode implements [StatusCoder].
func (r *RateLimited) StatusCode() int {
	return http.StatusTooManyRequests
}

// ErrorType implements [ErrorTyper].
func (r *RateLimited) ErrorType() string {
	return ErrorTypeThrottling
}

// ResponseHeader implements [ResponseHeaderer].
//
// The Retry-After header is rounded up to the next whole second.
func (r *RateLimited) ResponseHeader() http.Header {
	header := http.Header{}
	if r.RetryAfter > 0 {
		seconds := int64(math.Ceil(r.RetryAfter.Seconds()))
		header.Set("Retry-After", strconv.FormatInt(seconds, 10))
	}
	return header
}
