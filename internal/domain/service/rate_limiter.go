package service

// RateLimiter throttles actions per key, typically a utorid.
type RateLimiter interface {
	// Allow reports whether one more action for key may proceed now.
	Allow(key string) bool
}
