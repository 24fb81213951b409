// Package ingest drives the indexing pipeline: it resolves the checkpoint
// (bootstrapping an empty graph first), then walks ledger indices strictly
// upward, fetching each ledger, classifying its payments, and applying the
// idempotent graph writes, with fixed pacing between ledgers.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/ledgergraph/internal/graphindex"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/payments"
	"github.com/gabapcia/ledgergraph/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	// defaultStartLedger is where ingestion begins after bootstrap: the
	// first ledger index preserved by the network after genesis.
	defaultStartLedger = 32570

	// defaultBatchSize bounds how many ledgers one run processes before
	// terminating cleanly. A throttle, not an error.
	defaultBatchSize = 100_000

	// defaultPacing is the pause after every ledger, and defaultRest is the
	// longer pause taken every defaultRestEvery ledgers. Fixed policy to
	// stay within the public cluster's fair-use expectations.
	defaultPacing    = 25 * time.Millisecond
	defaultRestEvery = 20
	defaultRest      = 1 * time.Second
)

// LedgerSource resolves ledgers by index, serving from cache when possible.
type LedgerSource interface {
	// Fetch returns the ledger at the given index. An error survives the
	// source's internal bounded retry and is fatal for the run.
	Fetch(ctx context.Context, index uint64) (ledgerfetch.Ledger, error)
}

// GraphWriter applies idempotent upserts against the graph store and
// resolves the resume checkpoint.
type GraphWriter interface {
	// LastIndexedLedger returns the highest indexed ledger, or
	// graphindex.ErrNoCheckpointFound for an empty graph.
	LastIndexedLedger(ctx context.Context) (uint64, error)

	// Bootstrap prepares an empty graph: schema, synthetic genesis ledger,
	// genesis wallets and their activations.
	Bootstrap(ctx context.Context) error

	UpsertLedger(ctx context.Context, p graphindex.LedgerParams) error
	UpsertWallet(ctx context.Context, address string) error
	UpsertPayment(ctx context.Context, p graphindex.PaymentParams) error
	UpsertActivation(ctx context.Context, p graphindex.ActivationParams) error
}

// Service runs bounded ingestion batches.
type Service interface {
	// Run executes one bounded batch: checkpoint resolution, optional
	// bootstrap, then the sequential per-ledger loop. It returns nil when
	// the batch completes and the first unrecovered error otherwise; the
	// next Run resumes safely from the last fully committed ledger.
	Run(ctx context.Context) error
}

// service is the internal implementation of the Service interface.
type service struct {
	source LedgerSource
	graph  GraphWriter

	startLedger uint64
	batchSize   uint64

	pacing    time.Duration
	restEvery uint64
	rest      time.Duration
}

var _ Service = (*service)(nil)

// Option configures the ingestion service.
type Option func(*service)

// WithStartLedger overrides the ledger index ingestion begins at after a
// bootstrap.
func WithStartLedger(index uint64) Option {
	return func(s *service) {
		s.startLedger = index
	}
}

// WithBatchSize overrides how many ledgers one run processes.
func WithBatchSize(n uint64) Option {
	return func(s *service) {
		s.batchSize = n
	}
}

// WithPacing overrides the pacing policy: pause after every ledger, and a
// longer rest every restEvery ledgers.
func WithPacing(pacing time.Duration, restEvery uint64, rest time.Duration) Option {
	return func(s *service) {
		s.pacing = pacing
		s.restEvery = restEvery
		s.rest = rest
	}
}

// New creates an ingestion service over the given ledger source and graph
// writer.
func New(source LedgerSource, graph GraphWriter, opts ...Option) *service {
	s := &service{
		source:      source,
		graph:       graph,
		startLedger: defaultStartLedger,
		batchSize:   defaultBatchSize,
		pacing:      defaultPacing,
		restEvery:   defaultRestEvery,
		rest:        defaultRest,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run implements the Service interface.
func (s *service) Run(ctx context.Context) error {
	runID := uuid.NewString()

	start, err := s.graph.LastIndexedLedger(ctx)
	switch {
	case errors.Is(err, graphindex.ErrNoCheckpointFound):
		logger.Info(ctx, "empty graph, bootstrapping", "run.id", runID)
		if err := s.graph.Bootstrap(ctx); err != nil {
			return err
		}
		start = s.startLedger
	case err != nil:
		return err
	default:
		// The checkpoint ledger is re-ingested on purpose: its writes may
		// have landed partially, and every write is idempotent.
		logger.Info(ctx, "resuming from checkpoint",
			"run.id", runID,
			"ledger.index", start,
		)
	}

	for index := start; index < start+s.batchSize; index++ {
		if err := s.processLedger(ctx, index); err != nil {
			logger.Error(ctx, "ingestion aborted",
				"run.id", runID,
				"ledger.index", index,
				"error", err,
			)
			return err
		}

		if err := s.pause(ctx, index); err != nil {
			return err
		}
	}

	logger.Info(ctx, "batch complete",
		"run.id", runID,
		"ledger.first", start,
		"ledger.count", s.batchSize,
	)
	return nil
}

// processLedger fetches one ledger and applies all of its graph writes.
// Wallet upserts always happen before the payment or activation that
// references them, so the writer's preconditions hold in the normal path.
func (s *service) processLedger(ctx context.Context, index uint64) error {
	ledger, err := s.source.Fetch(ctx, index)
	if err != nil {
		return err
	}

	if err := s.graph.UpsertLedger(ctx, ledgerParams(ledger)); err != nil {
		return err
	}

	eligible := payments.Eligible(ledger.Transactions)

	activations := payments.Activations(eligible)
	for _, tx := range activations {
		child, ok := payments.CreatedAccount(tx)
		if !ok {
			continue
		}

		if err := s.graph.UpsertWallet(ctx, tx.Account); err != nil {
			return err
		}
		if err := s.graph.UpsertWallet(ctx, child); err != nil {
			return err
		}

		if err := s.graph.UpsertActivation(ctx, activationParams(ledger, tx, child)); err != nil {
			return err
		}
	}

	for _, tx := range eligible {
		if err := s.graph.UpsertWallet(ctx, tx.Account); err != nil {
			return err
		}
		if err := s.graph.UpsertWallet(ctx, tx.Destination); err != nil {
			return err
		}

		params, err := paymentParams(ledger, tx)
		if err != nil {
			return err
		}

		if err := s.graph.UpsertPayment(ctx, params); err != nil {
			return err
		}
	}

	logger.Info(ctx, "ledger indexed",
		"ledger.index", ledger.Index,
		"ledger.closeTime", ledger.CloseTime,
		"payments", len(eligible),
		"activations", len(activations),
	)
	return nil
}

// pause applies the fixed pacing policy after a ledger has been processed.
func (s *service) pause(ctx context.Context, index uint64) error {
	if err := sleep(ctx, s.pacing); err != nil {
		return err
	}

	if s.restEvery > 0 && index%s.restEvery == 0 {
		return sleep(ctx, s.rest)
	}

	return nil
}

// sleep waits for the given duration or until ctx is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("ingestion interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
