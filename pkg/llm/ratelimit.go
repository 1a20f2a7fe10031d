package llm

import (
	"context"
	"sync"
	"time"
)

// tokenBucket rate-limits one provider to its configured requests per
// minute. The bucket refills continuously at capacity/60 tokens per
// second, capped at capacity, and starts full.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// newTokenBucket creates a bucket for rpm requests per minute.
// rpm <= 0 disables limiting (every take succeeds).
func newTokenBucket(rpm int) *tokenBucket {
	if rpm <= 0 {
		return &tokenBucket{}
	}
	return &tokenBucket{
		tokens:     float64(rpm),
		capacity:   float64(rpm),
		refillRate: float64(rpm) / 60.0,
		lastRefill: time.Now(),
	}
}

func (b *tokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.lastRefill = now

	b.tokens += elapsed * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
}

// tryTake takes one token if available.
func (b *tokenBucket) tryTake() bool {
	if b.capacity == 0 {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// take blocks until a token is available or the context is done.
func (b *tokenBucket) take(ctx context.Context) error {
	if b.tryTake() {
		return nil
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if b.tryTake() {
				return nil
			}
		}
	}
}
