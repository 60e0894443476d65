// Package ratelimit throttles public inquiry submissions per client.
package ratelimit

import "context"

// RateLimitConfig caps requests in each sliding window. A non-positive limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerMinute > 0 || c.RequestsPerHour > 0 || c.RequestsPerDay > 0
}

// RateLimiter records a request for key and reports whether it fits every window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
}
