package algolia

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// RateLimiter throttles requests proactively with a token bucket and
// reactively honours Retry-After after a 429.
type RateLimiter struct {
	bucket *rate.Limiter

	mu         sync.Mutex
	retryAfter time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests with a
// burst of one. A non-positive rate never blocks.
func NewRateLimiter(perSecond float64) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	until := r.retryAfter
	r.mu.Unlock()

	if d := time.Until(until); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// Update records a Retry-After deadline from a throttled response.
func (r *RateLimiter) Update(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}
	secs, err := strconv.Atoi(resp.Header.Get(HeaderRetryAfter))
	if err != nil || secs <= 0 {
		return
	}

	r.mu.Lock()
	r.retryAfter = time.Now().Add(time.Duration(secs) * time.Second)
	r.mu.Unlock()
}
