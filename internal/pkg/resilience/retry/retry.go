// Package retry wraps the retry-go package from Avast behind a small
// interface with functional options. It is used wherever an operation may
// fail transiently and a bounded number of re-attempts is acceptable.
//
// The default policy is exponential backoff; callers that need a fixed wait
// between attempts (such as the ledger source, which retries exactly once
// after a long pause) configure it through WithFixedDelay.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic re-attempts on failure.
type Retry interface {
	// Execute runs the given operation, retrying it according to the
	// configured policy when it returns an error. The operation must be
	// idempotent. If ctx is canceled, retrying stops and the context error
	// is returned.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts   uint          // total number of attempts, including the first
	delay      time.Duration // base delay between attempts
	maxDelay   time.Duration // cap on the delay between attempts
	fixedDelay bool          // use a constant delay instead of exponential backoff
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry on top of retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with the provided options.
//
// Defaults: 3 attempts, 1s base delay with exponential backoff capped at 5s,
// returning only the last error.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}

// WithAttempts sets the total number of attempts, including the initial one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay disables exponential backoff: every wait between attempts
// uses the base delay verbatim.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}
