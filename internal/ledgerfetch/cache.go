package ledgerfetch

import (
	"context"
	"errors"
)

// ErrLedgerNotCached is returned by GetLedger when no payload has been
// stored for the requested ledger index.
var ErrLedgerNotCached = errors.New("ledger not cached")

// CacheStorage persists raw ledger payloads keyed by ledger index.
//
// The cache is write-once: a payload stored for an index is never replaced
// or invalidated. A flat keyspace will not scale indefinitely; partitioning
// the key layout is a known follow-up for the storage adapters.
type CacheStorage interface {
	// GetLedger returns the payload previously stored for the given index,
	// or ErrLedgerNotCached if none exists.
	GetLedger(ctx context.Context, index uint64) ([]byte, error)

	// SaveLedger stores the payload under the given index. If an entry
	// already exists for the index, the call is a no-op, not an error.
	SaveLedger(ctx context.Context, index uint64, payload []byte) error
}

// nopCache is a CacheStorage that stores nothing: every read misses and
// every write is discarded. Used when caching is disabled.
type nopCache struct{}

// GetLedger always reports a cache miss.
func (nopCache) GetLedger(_ context.Context, _ uint64) ([]byte, error) {
	return nil, ErrLedgerNotCached
}

// SaveLedger discards the payload.
func (nopCache) SaveLedger(_ context.Context, _ uint64, _ []byte) error {
	return nil
}
