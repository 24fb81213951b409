package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/ledgergraph/internal/graphindex"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error"))
}

// emptyLedger builds a ledger with no transactions at the given index.
func emptyLedger(index uint64) ledgerfetch.Ledger {
	closeTime := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	return ledgerfetch.Ledger{
		Index:      index,
		Hash:       "LEDGER_HASH",
		CloseTime:  &closeTime,
		ParentHash: "PARENT_HASH",
		TotalCoins: 99_999_999_999_999_999,
	}
}

// noPacing disables the inter-ledger pauses so tests run instantly.
func noPacing() Option {
	return WithPacing(0, 0, 0)
}

func TestService_Run(t *testing.T) {
	t.Run("empty graph is bootstrapped and ingestion starts at the configured ledger", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(0), graphindex.ErrNoCheckpointFound)
		graphMock.On("Bootstrap", mock.Anything).
			Return(nil)

		sourceMock.On("Fetch", mock.Anything, uint64(32570)).
			Return(emptyLedger(32570), nil)
		graphMock.On("UpsertLedger", mock.Anything, ledgerParams(emptyLedger(32570))).
			Return(nil)

		svc := New(sourceMock, graphMock, WithBatchSize(1), noPacing())

		err := svc.Run(t.Context())

		assert.NoError(t, err)
	})

	t.Run("resume re-ingests the checkpoint ledger first", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(5_000_000), nil)

		for _, index := range []uint64{5_000_000, 5_000_001} {
			sourceMock.On("Fetch", mock.Anything, index).
				Return(emptyLedger(index), nil)
			graphMock.On("UpsertLedger", mock.Anything, ledgerParams(emptyLedger(index))).
				Return(nil)
		}

		svc := New(sourceMock, graphMock, WithBatchSize(2), noPacing())

		err := svc.Run(t.Context())

		assert.NoError(t, err)
		graphMock.AssertNotCalled(t, "Bootstrap")
	})

	t.Run("eligible payment produces wallet and payment upserts", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		ledger := emptyLedger(100)
		ledger.Transactions = []ledgerfetch.Transaction{
			{
				Hash:        "TX_HASH",
				Type:        ledgerfetch.TransactionTypePayment,
				Account:     "rSender",
				Destination: "rReceiver",
				Fee:         10,
				Amount:      ledgerfetch.Amount{Kind: ledgerfetch.AmountXRP, Drops: 5_000_000},
				Result:      ledgerfetch.TransactionResultSuccess,
			},
			{
				Hash:   "SKIPPED",
				Type:   ledgerfetch.TransactionTypePayment,
				Result: "tecUNFUNDED_PAYMENT",
			},
		}

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(100), nil)
		sourceMock.On("Fetch", mock.Anything, uint64(100)).
			Return(ledger, nil)
		graphMock.On("UpsertLedger", mock.Anything, ledgerParams(ledger)).
			Return(nil)
		graphMock.On("UpsertWallet", mock.Anything, "rSender").
			Return(nil)
		graphMock.On("UpsertWallet", mock.Anything, "rReceiver").
			Return(nil)
		graphMock.On("UpsertPayment", mock.Anything, graphindex.PaymentParams{
			Hash:           "TX_HASH",
			Sender:         "rSender",
			Receiver:       "rReceiver",
			LedgerIndex:    100,
			Date:           ledger.CloseTime,
			Fee:            10,
			IsActivation:   false,
			Amount:         int64(5_000_000),
			AmountCurrency: "xrp",
		}).Return(nil)

		svc := New(sourceMock, graphMock, WithBatchSize(1), noPacing())

		err := svc.Run(t.Context())

		assert.NoError(t, err)
	})

	t.Run("activation payment also produces the activation upsert", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		ledger := emptyLedger(100)
		ledger.Transactions = []ledgerfetch.Transaction{
			{
				Hash:        "TX_HASH",
				Type:        ledgerfetch.TransactionTypePayment,
				Account:     "rParent",
				Destination: "rChild",
				Fee:         10,
				Amount:      ledgerfetch.Amount{Kind: ledgerfetch.AmountXRP, Drops: 20_000_000},
				Result:      ledgerfetch.TransactionResultSuccess,
				AffectedNodes: []ledgerfetch.AffectedNode{
					{Created: true, LedgerEntryType: ledgerfetch.LedgerEntryTypeAccountRoot, NewAccount: "rChild"},
				},
			},
		}

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(100), nil)
		sourceMock.On("Fetch", mock.Anything, uint64(100)).
			Return(ledger, nil)
		graphMock.On("UpsertLedger", mock.Anything, ledgerParams(ledger)).
			Return(nil)
		graphMock.On("UpsertWallet", mock.Anything, "rParent").
			Return(nil)
		graphMock.On("UpsertWallet", mock.Anything, "rChild").
			Return(nil)
		graphMock.On("UpsertActivation", mock.Anything, graphindex.ActivationParams{
			Parent:      "rParent",
			Child:       "rChild",
			LedgerIndex: 100,
			Hash:        "TX_HASH",
			Date:        ledger.CloseTime,
			Amount:      20_000_000,
		}).Return(nil)
		graphMock.On("UpsertPayment", mock.Anything, mock.MatchedBy(func(p graphindex.PaymentParams) bool {
			return p.Hash == "TX_HASH" && p.IsActivation
		})).Return(nil)

		svc := New(sourceMock, graphMock, WithBatchSize(1), noPacing())

		err := svc.Run(t.Context())

		assert.NoError(t, err)
	})

	t.Run("fetch failure aborts the run", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		fetchErr := errors.New("rate limited")

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(100), nil)
		sourceMock.On("Fetch", mock.Anything, uint64(100)).
			Return(ledgerfetch.Ledger{}, fetchErr)

		svc := New(sourceMock, graphMock, WithBatchSize(10), noPacing())

		err := svc.Run(t.Context())

		assert.ErrorIs(t, err, fetchErr)
		graphMock.AssertNotCalled(t, "UpsertLedger")
	})

	t.Run("graph write failure aborts the run", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		writeErr := errors.New("connection reset")

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(100), nil)
		sourceMock.On("Fetch", mock.Anything, uint64(100)).
			Return(emptyLedger(100), nil)
		graphMock.On("UpsertLedger", mock.Anything, mock.Anything).
			Return(writeErr)

		svc := New(sourceMock, graphMock, WithBatchSize(10), noPacing())

		err := svc.Run(t.Context())

		assert.ErrorIs(t, err, writeErr)
	})

	t.Run("checkpoint resolution failure aborts the run", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		readErr := errors.New("connection reset")

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(0), readErr)

		svc := New(sourceMock, graphMock, noPacing())

		err := svc.Run(t.Context())

		assert.ErrorIs(t, err, readErr)
		sourceMock.AssertNotCalled(t, "Fetch")
	})

	t.Run("bootstrap failure aborts the run", func(t *testing.T) {
		sourceMock := newLedgerSourceMock(t)
		graphMock := newGraphWriterMock(t)

		bootErr := errors.New("schema failure")

		graphMock.On("LastIndexedLedger", mock.Anything).
			Return(uint64(0), graphindex.ErrNoCheckpointFound)
		graphMock.On("Bootstrap", mock.Anything).
			Return(bootErr)

		svc := New(sourceMock, graphMock, noPacing())

		err := svc.Run(t.Context())

		assert.ErrorIs(t, err, bootErr)
		sourceMock.AssertNotCalled(t, "Fetch")
	})
}

func TestPaymentParams(t *testing.T) {
	t.Run("issued-currency amount is parsed to a float", func(t *testing.T) {
		ledger := emptyLedger(100)
		tx := ledgerfetch.Transaction{
			Hash:        "TX_HASH",
			Account:     "rSender",
			Destination: "rReceiver",
			Amount: ledgerfetch.Amount{
				Kind:     ledgerfetch.AmountIssued,
				Value:    "12.5",
				Currency: "USD",
				Issuer:   "rIssuer",
			},
		}

		p, err := paymentParams(ledger, tx)

		assert.NoError(t, err)
		assert.Equal(t, float64(12.5), p.Amount)
		assert.Equal(t, "USD", p.AmountCurrency)
		if assert.NotNil(t, p.AmountCurrencyIssuer) {
			assert.Equal(t, "rIssuer", *p.AmountCurrencyIssuer)
		}
	})

	t.Run("unparseable issued amount is rejected", func(t *testing.T) {
		tx := ledgerfetch.Transaction{
			Hash:   "TX_HASH",
			Amount: ledgerfetch.Amount{Kind: ledgerfetch.AmountIssued, Value: "not-a-number"},
		}

		_, err := paymentParams(emptyLedger(100), tx)

		assert.Error(t, err)
	})

	t.Run("delivered amount follows the same convention", func(t *testing.T) {
		tx := ledgerfetch.Transaction{
			Hash:            "TX_HASH",
			Amount:          ledgerfetch.Amount{Kind: ledgerfetch.AmountXRP, Drops: 5_000_000},
			DeliveredAmount: &ledgerfetch.Amount{Kind: ledgerfetch.AmountXRP, Drops: 4_999_990},
		}

		p, err := paymentParams(emptyLedger(100), tx)

		assert.NoError(t, err)
		assert.Equal(t, int64(4_999_990), p.DeliveredAmount)
		if assert.NotNil(t, p.DeliveredCurrency) {
			assert.Equal(t, "xrp", *p.DeliveredCurrency)
		}
		assert.Nil(t, p.DeliveredCurrencyIssuer)
	})
}
