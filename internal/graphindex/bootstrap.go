package graphindex

import (
	"context"
	"fmt"

	"github.com/gabapcia/ledgergraph/internal/pkg/logger"
)

// schemaQueries establish the uniqueness constraints and lookup indexes the
// graph model relies on. They run once, during bootstrap.
var schemaQueries = []string{
	"CREATE CONSTRAINT ledger_hash_unique IF NOT EXISTS FOR (l:Ledger) REQUIRE l.ledgerHash IS UNIQUE",
	"CREATE CONSTRAINT wallet_address_unique IF NOT EXISTS FOR (w:Wallet) REQUIRE w.address IS UNIQUE",
	"CREATE CONSTRAINT payment_hash_unique IF NOT EXISTS FOR (p:Payment) REQUIRE p.hash IS UNIQUE",
	"CREATE INDEX ledger_index IF NOT EXISTS FOR (l:Ledger) ON (l.ledgerIndex)",
	"CREATE INDEX ledger_close_time IF NOT EXISTS FOR (l:Ledger) ON (l.closeTime)",
	"CREATE INDEX payment_ledger_index IF NOT EXISTS FOR (p:Payment) ON (p.ledgerIndex)",
	"CREATE INDEX payment_date IF NOT EXISTS FOR (p:Payment) ON (p.date)",
	"CREATE INDEX payment_amount IF NOT EXISTS FOR (p:Payment) ON (p.amount)",
}

// syntheticGenesisHash is the sentinel hash (and activation hash) used for
// the synthetic genesis ledger, which has no real on-chain counterpart.
const syntheticGenesisHash = "1"

// Bootstrap prepares an empty graph for ingestion. It establishes schema
// constraints and indexes (a constraint that already exists is logged and
// tolerated, not fatal), creates the synthetic genesis ledger and the
// genesis wallet, and activates every configured genesis-era wallet from it
// with a synthetic activation anchored at the genesis ledger.
//
// Bootstrap is idempotent: every write it performs is an upsert.
func (w *Writer) Bootstrap(ctx context.Context) error {
	for _, query := range schemaQueries {
		if _, err := w.storage.RunWrite(ctx, query, nil); err != nil {
			logger.Warn(ctx, "schema setup statement rejected",
				"query", query,
				"error", err,
			)
		}
	}

	if err := w.UpsertWallet(ctx, GenesisWalletAddress); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if err := w.UpsertLedger(ctx, LedgerParams{
		Index:      genesisLedgerIndex,
		Hash:       syntheticGenesisHash,
		CloseTime:  nil,
		ParentHash: "0",
		TotalCoins: 0,
	}); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	for _, address := range w.genesisWallets {
		if err := w.UpsertWallet(ctx, address); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}

		if err := w.UpsertActivation(ctx, ActivationParams{
			Parent:      GenesisWalletAddress,
			Child:       address,
			LedgerIndex: genesisLedgerIndex,
			Hash:        syntheticGenesisHash,
			Date:        nil,
			Amount:      0,
		}); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	logger.Info(ctx, "graph bootstrap complete",
		"genesis.wallets", len(w.genesisWallets),
	)
	return nil
}
