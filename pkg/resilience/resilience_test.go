package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitOpensOnRateLimits(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Minute)
	if !cb.Allow() {
		t.Fatalf("expected closed circuit initially")
	}
	cb.OnError(RateLimitError{Backend: "hiero"})
	if !cb.Allow() {
		t.Fatalf("one failure should not open the circuit")
	}
	cb.OnError(RateLimitError{Backend: "hiero"})
	if cb.Allow() {
		t.Fatalf("expected open circuit after threshold")
	}
	cb.OnSuccess()
	if !cb.Allow() {
		t.Fatalf("success should reset the circuit")
	}
}

func TestCircuitProbesAfterCooldown(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	current := time.Now()
	cb.now = func() time.Time { return current }

	cb.OnError(RateLimitError{Backend: "hiero"})
	if cb.Allow() {
		t.Fatalf("circuit should be open")
	}
	current = current.Add(2 * time.Minute)
	if !cb.Allow() {
		t.Fatalf("cooldown elapsed, one probe should pass")
	}
	if cb.Allow() {
		t.Fatalf("only one probe may pass while half open")
	}
	cb.OnError(RateLimitError{Backend: "hiero"})
	if cb.Allow() {
		t.Fatalf("failed probe should reopen the circuit")
	}
	current = current.Add(2 * time.Minute)
	if !cb.Allow() {
		t.Fatalf("second cooldown should allow another probe")
	}
	cb.OnSuccess()
	if !cb.Allow() {
		t.Fatalf("successful probe should close the circuit")
	}
}

func TestCircuitIgnoresOtherErrors(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	cb.OnError(errors.New("boom"))
	if !cb.Allow() {
		t.Fatalf("non rate-limit errors must not trip the breaker")
	}
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	rejected := errors.New("rejected")
	p := NewRetryPolicy(3, time.Millisecond)
	p.IsRetryable = func(err error) bool { return !errors.Is(err, rejected) }
	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return rejected
	})
	if !errors.Is(err, rejected) {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("non-retryable error retried %d times", calls)
	}
}

func TestRetryEventuallySucceeds(t *testing.T) {
	p := NewRetryPolicy(2, time.Millisecond)
	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}
