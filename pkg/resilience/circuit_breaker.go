package resilience

import (
	"errors"
	"sync"
	"time"
)

// RateLimitError represents a gateway rate limit response.
type RateLimitError struct {
	Backend string
	Message string
}

func (e RateLimitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "rate limit"
}

// IsRateLimit returns true when the error is a RateLimitError.
func IsRateLimit(err error) bool {
	var rl RateLimitError
	return errors.As(err, &rl)
}

// CircuitBreaker blocks gateway requests after repeated rate limit
// failures, letting the remote side recover before more traffic
// arrives. After the cooldown a single probe request is let through;
// its outcome closes the circuit or reopens it for another cooldown.
type CircuitBreaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	now       func() time.Time

	failures int
	open     bool
	openedAt time.Time
	probing  bool
}

func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 3
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &CircuitBreaker{threshold: threshold, cooldown: cooldown, now: time.Now}
}

func (c *CircuitBreaker) Allow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return true
	}
	if c.now().Before(c.openedAt.Add(c.cooldown)) {
		return false
	}
	if c.probing {
		return false
	}
	c.probing = true
	return true
}

func (c *CircuitBreaker) OnSuccess() {
	c.mu.Lock()
	c.failures = 0
	c.open = false
	c.probing = false
	c.mu.Unlock()
}

// OnError counts only rate limits; rejections and transport faults say
// nothing about the remote side's capacity.
func (c *CircuitBreaker) OnError(err error) {
	if !IsRateLimit(err) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.probing {
		c.probing = false
		c.openedAt = c.now()
		return
	}
	c.failures++
	if c.failures >= c.threshold {
		c.open = true
		c.openedAt = c.now()
	}
}
