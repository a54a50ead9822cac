package operator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/watchtower-bridge/pkg/config"
)

func testRetryConfig() config.RetryConfig {
	return config.RetryConfig{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     4 * time.Millisecond,
		MaxAttempts:    5,
	}
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	b := newBackoff(testRetryConfig())

	assert.Equal(t, time.Millisecond, b.next())
	assert.Equal(t, 2*time.Millisecond, b.next())
	assert.Equal(t, 4*time.Millisecond, b.next())
	// capped at MaxBackoff from here on
	assert.Equal(t, 4*time.Millisecond, b.next())
	assert.Equal(t, 4*time.Millisecond, b.next())
}

func TestBackoffResetReturnsToInitial(t *testing.T) {
	b := newBackoff(testRetryConfig())
	b.next()
	b.next()
	b.reset()
	assert.Equal(t, time.Millisecond, b.next())
}

func TestCircuitBreakerTripsAfterThreshold(t *testing.T) {
	cfg := config.CircuitBreakerConfig{FailureThreshold: 3, CooldownPeriod: 50 * time.Millisecond}
	cb := newCircuitBreaker(cfg, "test-chain")
	now := time.Now()

	assert.True(t, cb.Allow(now))
	assert.False(t, cb.RecordFailure(now))
	assert.False(t, cb.RecordFailure(now))
	assert.True(t, cb.RecordFailure(now), "third consecutive failure should trip the breaker")

	assert.False(t, cb.Allow(now), "breaker should be open immediately after tripping")
	assert.True(t, cb.Allow(now.Add(60*time.Millisecond)), "breaker should close after cooldown elapses")
}

func TestCircuitBreakerSuccessResetsConsecutiveCount(t *testing.T) {
	cfg := config.CircuitBreakerConfig{FailureThreshold: 2, CooldownPeriod: time.Second}
	cb := newCircuitBreaker(cfg, "test-chain")
	now := time.Now()

	cb.RecordFailure(now)
	cb.RecordSuccess()
	assert.False(t, cb.RecordFailure(now), "count should have been reset by the intervening success")
}

func TestWithRetrySucceedsWithoutExhaustingAttempts(t *testing.T) {
	calls := 0
	err := withRetry(testRetryConfig(), nil, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryReturnsLastErrorAfterExhaustingAttempts(t *testing.T) {
	cfg := testRetryConfig()
	calls := 0
	err := withRetry(cfg, nil, func() error {
		calls++
		return errors.New("still broken")
	})
	require.Error(t, err)
	assert.Equal(t, cfg.MaxAttempts, calls)
}

func TestWithRetryTripsBreakerOnExhaustion(t *testing.T) {
	cfg := testRetryConfig()
	cfg.MaxAttempts = 3
	cb := newCircuitBreaker(config.CircuitBreakerConfig{FailureThreshold: 1, CooldownPeriod: time.Second}, "chain")

	err := withRetry(cfg, cb, func() error { return errors.New("down") })
	require.Error(t, err)
	assert.False(t, cb.Allow(time.Now()), "breaker with threshold 1 should trip on the first RecordFailure")
}
