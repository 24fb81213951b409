package ledgerfetch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// clientMock is a testify mock for the Client interface.
type clientMock struct {
	mock.Mock
}

var _ Client = (*clientMock)(nil)

func newClientMock(t *testing.T) *clientMock {
	m := new(clientMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *clientMock) FetchLedger(ctx context.Context, index uint64) (Ledger, []byte, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(Ledger), args.Get(1).([]byte), args.Error(2)
}

func (m *clientMock) DecodeLedger(payload []byte) (Ledger, error) {
	args := m.Called(payload)
	return args.Get(0).(Ledger), args.Error(1)
}

// cacheStorageMock is a testify mock for the CacheStorage interface.
type cacheStorageMock struct {
	mock.Mock
}

var _ CacheStorage = (*cacheStorageMock)(nil)

func newCacheStorageMock(t *testing.T) *cacheStorageMock {
	m := new(cacheStorageMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *cacheStorageMock) GetLedger(ctx context.Context, index uint64) ([]byte, error) {
	args := m.Called(ctx, index)
	if payload := args.Get(0); payload != nil {
		return payload.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *cacheStorageMock) SaveLedger(ctx context.Context, index uint64, payload []byte) error {
	args := m.Called(ctx, index, payload)
	return args.Error(0)
}
