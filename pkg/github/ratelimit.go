package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cemremete/gitfolio/pkg/errors"
)

// AnonymousQuota is the GitHub API request ceiling for unauthenticated
// clients (per hour).
const AnonymousQuota = 60

// RateLimiter tracks the remote API quota locally. It is consulted before
// every request and reconciled from response headers after every response,
// so the local view stays accurate even when the pre-check passed.
//
// The reset time is stored as a wall-clock instant, not a duration, so
// throttle decisions are monotonic across calls.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	reset     time.Time
	now       func() time.Time // injectable for tests
}

// NewRateLimiter creates a limiter initialized to the anonymous quota ceiling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{remaining: AnonymousQuota, now: time.Now}
}

// Check fails with a RateLimitedError when the remaining quota is exhausted
// and the reset instant has not passed yet; otherwise it passes silently.
func (r *RateLimiter) Check() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.remaining <= 0 && now.Before(r.reset) {
		return &errors.RateLimitedError{RetryAfter: retryAfterMinutes(r.reset, now)}
	}
	return nil
}

// Record updates the local quota state from response headers. Absent headers
// leave prior state untouched; GitHub does not guarantee them on every response.
func (r *RateLimiter) Record(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			r.remaining = n
		}
	}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			r.reset = time.Unix(epoch, 0)
		}
	}
}

// Remaining returns the last known remaining quota.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// RetryAfter returns how many minutes until the quota resets, minimum 1.
func (r *RateLimiter) RetryAfter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return retryAfterMinutes(r.reset, r.now())
}

func retryAfterMinutes(reset, now time.Time) int {
	mins := int(reset.Sub(now).Minutes()) + 1
	if mins < 1 {
		mins = 1
	}
	return mins
}
