package xrpl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jsonrpcClientMock is a testify mock for the jsonrpc.Client interface.
type jsonrpcClientMock struct {
	mock.Mock
}

func newJSONRPCClientMock(t *testing.T) *jsonrpcClientMock {
	m := new(jsonrpcClientMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *jsonrpcClientMock) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	args := m.Called(ctx, method, params)
	if raw := args.Get(0); raw != nil {
		return raw.(json.RawMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestClient_FetchLedger(t *testing.T) {
	t.Run("requests the ledger with expanded transactions", func(t *testing.T) {
		connMock := newJSONRPCClientMock(t)

		payload := json.RawMessage(`{"ledger":{"ledger_index":"32570","total_coins":"0"}}`)
		connMock.On("Fetch", mock.Anything, "ledger", ledgerRequest{
			LedgerIndex:  32570,
			Transactions: true,
			Expand:       true,
		}).Return(payload, nil)

		c := NewClient(connMock)

		ledger, raw, err := c.FetchLedger(t.Context(), 32570)

		require.NoError(t, err)
		assert.Equal(t, uint64(32570), ledger.Index)
		assert.Equal(t, []byte(payload), raw)
	})

	t.Run("transport failure is propagated", func(t *testing.T) {
		connMock := newJSONRPCClientMock(t)

		fetchErr := errors.New("rate limited")
		connMock.On("Fetch", mock.Anything, "ledger", mock.Anything).
			Return(nil, fetchErr)

		c := NewClient(connMock)

		_, _, err := c.FetchLedger(t.Context(), 32570)

		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("undecodable payload is rejected", func(t *testing.T) {
		connMock := newJSONRPCClientMock(t)

		connMock.On("Fetch", mock.Anything, "ledger", mock.Anything).
			Return(json.RawMessage(`{"ledger":{"ledger_index":"abc"}}`), nil)

		c := NewClient(connMock)

		_, _, err := c.FetchLedger(t.Context(), 32570)

		assert.Error(t, err)
	})
}
