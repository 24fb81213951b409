// Package ledgerfetch provides the cache-fronted ledger source: it serves
// ledgers from durable local storage when available and falls back to the
// remote JSON-RPC collaborator, applying one bounded retry on failure.
package ledgerfetch

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/ledgergraph/internal/pkg/logger"
	"github.com/gabapcia/ledgergraph/internal/pkg/resilience/retry"
)

// fetchRetryBackoff is how long the source waits before its single retry of
// a failed remote fetch. Deliberately long: the public rippled cluster
// rate-limits aggressively.
const fetchRetryBackoff = 60 * time.Second

// Service resolves ledgers by index.
type Service interface {
	// Fetch returns the ledger at the given index, from cache when
	// possible. A remote failure that survives the bounded retry is
	// returned as-is and should be treated as fatal for the run.
	Fetch(ctx context.Context, index uint64) (Ledger, error)
}

// service is the internal implementation of the Service interface.
type service struct {
	client Client       // remote ledger data source
	cache  CacheStorage // write-once payload cache
	retry  retry.Retry  // bounded retry policy for remote fetches
}

var _ Service = (*service)(nil)

// config holds the optional collaborators of the service.
type config struct {
	cache CacheStorage
	retry retry.Retry
}

// Option configures the ledgerfetch service.
type Option func(*config)

// WithCacheStorage sets the payload cache. Without it, every Fetch goes to
// the remote source.
func WithCacheStorage(cs CacheStorage) Option {
	return func(c *config) {
		c.cache = cs
	}
}

// WithRetry replaces the default fetch retry policy (2 attempts, fixed 60s
// wait between them).
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates a ledgerfetch service backed by the given remote client.
func New(client Client, opts ...Option) *service {
	cfg := config{
		cache: nopCache{},
		retry: retry.New(
			retry.WithAttempts(2),
			retry.WithDelay(fetchRetryBackoff),
			retry.WithMaxDelay(fetchRetryBackoff),
			retry.WithFixedDelay(),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		client: client,
		cache:  cfg.cache,
		retry:  cfg.retry,
	}
}

// Fetch implements the Service interface.
//
// Cache hits are decoded and returned directly. On a miss the remote source
// is called with the bounded retry policy; the raw payload of a successful
// response is persisted under the index the server confirmed before the
// decoded ledger is returned.
func (s *service) Fetch(ctx context.Context, index uint64) (Ledger, error) {
	payload, err := s.cache.GetLedger(ctx, index)
	switch {
	case err == nil:
		return s.client.DecodeLedger(payload)
	case !errors.Is(err, ErrLedgerNotCached):
		return Ledger{}, err
	}

	var ledger Ledger
	err = s.retry.Execute(ctx, func() error {
		var fetchErr error
		ledger, payload, fetchErr = s.client.FetchLedger(ctx, index)
		if fetchErr != nil {
			logger.Warn(ctx, "ledger fetch attempt failed",
				"ledger.index", index,
				"error", fetchErr,
			)
		}
		return fetchErr
	})
	if err != nil {
		return Ledger{}, err
	}

	// Key by the index the server confirmed, not the one requested.
	if err := s.cache.SaveLedger(ctx, ledger.Index, payload); err != nil {
		return Ledger{}, err
	}

	return ledger, nil
}
