package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type visitorBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-IP token bucket. It throttles the recommendation
// preview endpoints, which are the cheapest to spam.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillEvery time.Duration
	visitors    map[string]*visitorBucket
	stopCleanup chan struct{}
}

func NewRateLimiter(capacity int, refillEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		refillEvery: refillEvery,
		visitors:    make(map[string]*visitorBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup drops buckets that have been idle long enough to be full again.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.visitors {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.visitors, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.visitors[ip]

	if !exists {
		r.visitors[ip] = &visitorBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillEvery {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
