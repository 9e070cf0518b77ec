package service

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy controls the retry-with-backoff wrapper applied to remote
// calls. MaxAttempts counts the first try; the delay before retry n doubles
// each time starting from BaseDelay, with ±JitterPercent random jitter so
// many clients recovering from the same outage do not retry in lockstep.
type RetryPolicy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	JitterPercent uint64
}

// DefaultRetryPolicy matches the sync engine contract: three attempts total,
// 2s then 4s between them, 30% jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second, JitterPercent: 30}
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := retry.NewExponential(base)
	if p.JitterPercent > 0 {
		b = retry.WithJitterPercent(p.JitterPercent, b)
	}
	return retry.WithMaxRetries(uint64(attempts-1), b)
}

// withRetry runs op under policy, retrying only errors accepted by the
// retryable classifier. Non-retryable errors and exhausted retries surface
// the last error unchanged (wrapped only by the op itself).
func withRetry[T any](ctx context.Context, policy RetryPolicy, retryable func(error) bool, op func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		result = v
		return nil
	})

	return result, err
}

// doWithRetry is withRetry for operations that produce no value.
func doWithRetry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, op func(ctx context.Context) error) error {
	_, err := withRetry(ctx, policy, retryable, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
