// Package cli defines the ledgergraph command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/ledgergraph/internal/ingest"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the ledgergraph CLI application.
//
// It registers the available commands:
//
//   - `index`: Runs one bounded ingestion batch against the graph store.
//   - `fetch`: Warms the local cache with a single ledger.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - in: The ingestion service used by the index command.
//   - ls: The ledger source used by the fetch command.
func Run(ctx context.Context, in ingest.Service, ls ledgerfetch.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ledgergraph",
		Description:           "Indexes XRP Ledger payment activity into a Neo4j property graph.",
		Usage:                 "ledgergraph [command] [flags]",
		Commands: []*cli.Command{
			indexCommand(in),
			fetchCommand(ls),
		},
	}

	return app.Run(ctx, os.Args)
}
