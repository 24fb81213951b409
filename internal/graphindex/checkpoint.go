package graphindex

import (
	"context"
	"fmt"
)

const lastIndexedLedgerQuery = `
MATCH (ledger:Ledger)
RETURN ledger.ledgerIndex AS ledgerIndex
ORDER BY ledger.ledgerIndex DESC
LIMIT 1`

// LastIndexedLedger returns the highest ledger index present in the graph,
// which is the checkpoint ingestion resumes from. It returns
// ErrNoCheckpointFound when the graph holds no Ledger nodes at all.
func (w *Writer) LastIndexedLedger(ctx context.Context) (uint64, error) {
	rows, err := w.storage.RunRead(ctx, lastIndexedLedgerQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("resolve checkpoint: %w", err)
	}
	if len(rows) == 0 {
		return 0, ErrNoCheckpointFound
	}

	index, ok := rows[0]["ledgerIndex"].(int64)
	if !ok || index < 0 {
		return 0, fmt.Errorf("resolve checkpoint: unexpected ledgerIndex value %v", rows[0]["ledgerIndex"])
	}

	return uint64(index), nil
}
