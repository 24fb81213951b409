// Package fs implements the ledgerfetch.CacheStorage interface on the local
// filesystem: one file per ledger index, written once and never replaced.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
)

// TODO: shard payloads into subdirectories in fixed-size batches; a flat
// directory stops being workable long before the full ledger history fits.
type storage struct {
	dir string
}

// Compile-time assertion that storage implements the CacheStorage interface.
var _ ledgerfetch.CacheStorage = (*storage)(nil)

// NewStorage creates a filesystem cache rooted at dir, creating the
// directory if needed.
func NewStorage(dir string) (*storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &storage{dir: dir}, nil
}

// ledgerPath is the cache file for one ledger index.
func (s *storage) ledgerPath(index uint64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.json", index))
}

// GetLedger returns the cached payload for the given index, or
// ledgerfetch.ErrLedgerNotCached when no file exists.
func (s *storage) GetLedger(_ context.Context, index uint64) ([]byte, error) {
	payload, err := os.ReadFile(s.ledgerPath(index))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ledgerfetch.ErrLedgerNotCached
		}

		return nil, err
	}

	return payload, nil
}

// SaveLedger stores the payload for the given index. The file is created
// exclusively, so an existing entry is left untouched and the call is a
// no-op.
func (s *storage) SaveLedger(_ context.Context, index uint64, payload []byte) error {
	f, err := os.OpenFile(s.ledgerPath(index), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}

		return err
	}

	if _, err := f.Write(payload); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
