// Package xrpl implements the ledgerfetch.Client interface against a
// rippled JSON-RPC endpoint using the shared transport client.
package xrpl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/pkg/transport/jsonrpc"
)

// ledgerRequest is the parameter object of the "ledger" method. Expanded
// transactions are always requested, since the pipeline consumes their
// execution metadata.
type ledgerRequest struct {
	LedgerIndex  uint64 `json:"ledger_index"`
	Transactions bool   `json:"transactions"`
	Expand       bool   `json:"expand"`
}

// client implements the ledgerfetch.Client interface for rippled nodes.
type client struct {
	conn jsonrpc.Client // underlying JSON-RPC client
}

var _ ledgerfetch.Client = (*client)(nil)

// NewClient creates an XRPL ledger client over the given JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// FetchLedger implements the ledgerfetch.Client interface. The returned
// payload is the raw result object, suitable for caching and later
// re-decoding via DecodeLedger.
func (c *client) FetchLedger(ctx context.Context, index uint64) (ledgerfetch.Ledger, []byte, error) {
	raw, err := c.conn.Fetch(ctx, "ledger", ledgerRequest{
		LedgerIndex:  index,
		Transactions: true,
		Expand:       true,
	})
	if err != nil {
		return ledgerfetch.Ledger{}, nil, fmt.Errorf("fetch ledger %d: %w", index, err)
	}

	ledger, err := c.DecodeLedger(raw)
	if err != nil {
		return ledgerfetch.Ledger{}, nil, err
	}

	return ledger, raw, nil
}

// DecodeLedger implements the ledgerfetch.Client interface.
func (c *client) DecodeLedger(payload []byte) (ledgerfetch.Ledger, error) {
	var result ledgerResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return ledgerfetch.Ledger{}, fmt.Errorf("decode ledger payload: %w", err)
	}

	return result.toDomainLedger()
}
