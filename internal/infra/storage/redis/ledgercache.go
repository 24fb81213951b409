// Package redis implements the ledgerfetch.CacheStorage interface on Redis,
// for deployments where a shared cache is preferable to the local
// filesystem. Entries never expire and are never replaced once written.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"

	"github.com/redis/go-redis/v9"
)

// ledgerKeyPrefix namespaces all cached ledger payloads.
const ledgerKeyPrefix = "ledgergraph"

// ledgerCacheKey constructs the key for one ledger payload:
//
//	"ledgergraph:ledger:<index>"
func ledgerCacheKey(index uint64) string {
	return fmt.Sprintf("%s:ledger:%d", ledgerKeyPrefix, index)
}

// GetLedger returns the payload cached for the given ledger index, or
// ledgerfetch.ErrLedgerNotCached when the key does not exist.
func (c *client) GetLedger(ctx context.Context, index uint64) ([]byte, error) {
	payload, err := c.conn.Get(ctx, ledgerCacheKey(index)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ledgerfetch.ErrLedgerNotCached
		}

		return nil, err
	}

	return payload, nil
}

// SaveLedger stores the payload for the given ledger index without expiry.
// SETNX keeps the cache write-once: an existing entry is left untouched.
func (c *client) SaveLedger(ctx context.Context, index uint64, payload []byte) error {
	return c.conn.SetNX(ctx, ledgerCacheKey(index), payload, 0).Err()
}

// Compile-time assertion that client implements the CacheStorage interface.
var _ ledgerfetch.CacheStorage = (*client)(nil)
