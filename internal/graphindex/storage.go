package graphindex

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LastIndexedLedger when the graph
// contains no Ledger nodes yet. It is the designed signal to run Bootstrap,
// not a failure.
var ErrNoCheckpointFound = errors.New("no ledger indexed yet")

// ErrPrerequisiteMissing is returned when an upsert's MATCH preconditions
// touched no rows: a wallet or ledger that the orchestrator must create
// beforehand does not exist. It indicates a broken write ordering and is
// fatal for the run.
var ErrPrerequisiteMissing = errors.New("graph prerequisite missing")

// GraphStorage is the port to the graph database. Each call executes one
// query in its own transaction, relying on the store's per-transaction
// atomicity; the writer layers no locking on top.
type GraphStorage interface {
	// RunWrite executes a write query with the given parameters and returns
	// the rows it produced. Queries whose MATCH clauses found nothing
	// return zero rows rather than an error.
	RunWrite(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)

	// RunRead executes a read-only query with the given parameters.
	RunRead(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
