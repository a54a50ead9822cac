package operator

import (
	"sync"
	"time"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
)

// backoff implements the exponential-backoff-with-cap policy: delay
// doubles from InitialBackoff up to MaxBackoff, reset
// to InitialBackoff on success.
type backoff struct {
	cfg     config.RetryConfig
	current time.Duration
}

func newBackoff(cfg config.RetryConfig) *backoff {
	return &backoff{cfg: cfg, current: cfg.InitialBackoff}
}

func (b *backoff) next() time.Duration {
	d := b.current
	b.current *= 2
	if b.current > b.cfg.MaxBackoff {
		b.current = b.cfg.MaxBackoff
	}
	return d
}

func (b *backoff) reset() {
	b.current = b.cfg.InitialBackoff
}

// circuitBreaker trips after FailureThreshold consecutive failures
// and stays open for CooldownPeriod, pausing a chain's
// writer without tearing down its goroutine.
type circuitBreaker struct {
	cfg   config.CircuitBreakerConfig
	label string

	mu          sync.Mutex
	consecutive int
	openUntil   time.Time
}

func newCircuitBreaker(cfg config.CircuitBreakerConfig, label string) *circuitBreaker {
	return &circuitBreaker{cfg: cfg, label: label}
}

// Allow reports whether the circuit is closed (work may proceed).
func (c *circuitBreaker) Allow(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.After(c.openUntil)
}

// RecordSuccess resets the consecutive-failure count.
func (c *circuitBreaker) RecordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.consecutive = 0
}

// RecordFailure increments the consecutive-failure count and, once it
// reaches FailureThreshold, opens the circuit for CooldownPeriod.
func (c *circuitBreaker) RecordFailure(now time.Time) (tripped bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.consecutive++
	if c.consecutive >= c.cfg.FailureThreshold {
		c.openUntil = now.Add(c.cfg.CooldownPeriod)
		c.consecutive = 0
		metrics.CircuitBreakerOpen.WithLabelValues(c.label).Set(1)
		return true
	}
	return false
}

// withRetry runs fn up to cfg.MaxAttempts times, sleeping the backoff
// delay between attempts, and records the outcome with the breaker so
// an exhausted retry run counts toward tripping it. cb may be nil, in
// which case no breaker accounting happens.
func withRetry(cfg config.RetryConfig, cb *circuitBreaker, fn func() error) error {
	b := newBackoff(cfg)
	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			if cb != nil {
				cb.RecordSuccess()
				metrics.CircuitBreakerOpen.WithLabelValues(cb.label).Set(0)
			}
			return nil
		}
		if attempt < cfg.MaxAttempts {
			time.Sleep(b.next())
		}
	}
	if cb != nil {
		cb.RecordFailure(time.Now())
	}
	return err
}
