package ingest

import (
	"context"
	"testing"

	"github.com/gabapcia/ledgergraph/internal/graphindex"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"

	"github.com/stretchr/testify/mock"
)

// ledgerSourceMock is a testify mock for the LedgerSource interface.
type ledgerSourceMock struct {
	mock.Mock
}

var _ LedgerSource = (*ledgerSourceMock)(nil)

func newLedgerSourceMock(t *testing.T) *ledgerSourceMock {
	m := new(ledgerSourceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ledgerSourceMock) Fetch(ctx context.Context, index uint64) (ledgerfetch.Ledger, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(ledgerfetch.Ledger), args.Error(1)
}

// graphWriterMock is a testify mock for the GraphWriter interface.
type graphWriterMock struct {
	mock.Mock
}

var _ GraphWriter = (*graphWriterMock)(nil)

func newGraphWriterMock(t *testing.T) *graphWriterMock {
	m := new(graphWriterMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *graphWriterMock) LastIndexedLedger(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *graphWriterMock) Bootstrap(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *graphWriterMock) UpsertLedger(ctx context.Context, p graphindex.LedgerParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *graphWriterMock) UpsertWallet(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *graphWriterMock) UpsertPayment(ctx context.Context, p graphindex.PaymentParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *graphWriterMock) UpsertActivation(ctx context.Context, p graphindex.ActivationParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
