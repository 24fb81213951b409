package cli

import (
	"context"

	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// fetchCommand returns the CLI command that fetches a single ledger,
// warming the local payload cache without touching the graph.
//
// Usage example:
//
//	ledgergraph fetch --ledger 32570
func fetchCommand(ls ledgerfetch.Service) *cli.Command {
	return &cli.Command{
		Name:        "fetch",
		Description: "Fetches one ledger and stores its raw payload in the cache.",
		Usage:       "Warms the ledger payload cache for the given index.",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:     "ledger",
				Usage:    "ledger index to fetch",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			index := c.Uint("ledger")

			ledger, err := ls.Fetch(ctx, uint64(index))
			if err != nil {
				return err
			}

			logger.Info(ctx, "ledger fetched",
				"ledger.index", ledger.Index,
				"ledger.hash", ledger.Hash,
				"ledger.transactions", len(ledger.Transactions),
			)
			return nil
		},
	}
}
