package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/ledgergraph/internal/ingest"

	"github.com/urfave/cli/v3"
)

// indexCommand returns the CLI command that runs one bounded ingestion
// batch: checkpoint resolution, bootstrap when the graph is empty, then the
// sequential ledger loop.
//
// Usage example:
//
//	ledgergraph index
//
// The batch terminates cleanly on its own once the configured number of
// ledgers has been processed, or early on SIGINT/SIGTERM.
func indexCommand(in ingest.Service) *cli.Command {
	return &cli.Command{
		Name:        "index",
		Description: "Runs one bounded ingestion batch from the last checkpoint.",
		Usage:       "Walks ledgers forward from the checkpoint and materializes payments into the graph.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return in.Run(ctx)
		},
	}
}
