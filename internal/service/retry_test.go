package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("flaky")

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond}
}

func alwaysRetryable(error) bool { return true }
func neverRetryable(error) bool  { return false }

func TestWithRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := withRetry(context.Background(), fastPolicy(3), alwaysRetryable, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetriesUpToMaxAttempts(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastPolicy(3), alwaysRetryable, func(ctx context.Context) (int, error) {
		calls++
		return 0, errFlaky
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_RecoversMidway(t *testing.T) {
	calls := 0
	got, err := withRetry(context.Background(), fastPolicy(3), alwaysRetryable, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errFlaky
		}
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonRetryableFailsImmediately(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastPolicy(3), neverRetryable, func(ctx context.Context) (int, error) {
		calls++
		return 0, errFlaky
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_SingleAttemptPolicy(t *testing.T) {
	calls := 0
	err := doWithRetry(context.Background(), fastPolicy(1), alwaysRetryable, func(ctx context.Context) error {
		calls++
		return errFlaky
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ZeroAttemptsNormalizedToOne(t *testing.T) {
	calls := 0
	err := doWithRetry(context.Background(), RetryPolicy{MaxAttempts: 0, BaseDelay: time.Millisecond}, alwaysRetryable, func(ctx context.Context) error {
		calls++
		return errFlaky
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := doWithRetry(ctx, RetryPolicy{MaxAttempts: 10, BaseDelay: 50 * time.Millisecond}, alwaysRetryable, func(ctx context.Context) error {
		calls++
		cancel()
		return errFlaky
	})

	require.Error(t, err)
	assert.LessOrEqual(t, calls, 2)
}
