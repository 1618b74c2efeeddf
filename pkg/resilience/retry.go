package resilience

import (
	"context"
	"time"
)

// RetryPolicy retries transient gateway failures with a flat backoff.
// Business rejections must not be retried; callers gate on IsRetryable.
type RetryPolicy struct {
	MaxRetries  int
	Backoff     time.Duration
	IsRetryable func(error) bool
}

func NewRetryPolicy(maxRetries int, backoff time.Duration) RetryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	return RetryPolicy{MaxRetries: maxRetries, Backoff: backoff}
}

func (r RetryPolicy) Do(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i <= r.MaxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if r.IsRetryable != nil && !r.IsRetryable(err) {
			return err
		}
		if i == r.MaxRetries {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.Backoff):
		}
	}
	return err
}
