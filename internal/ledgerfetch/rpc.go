package ledgerfetch

import "context"

// Client defines the remote source of ledger data.
type Client interface {
	// FetchLedger retrieves the ledger at the given index together with its
	// transactions and their execution metadata. It returns the decoded
	// ledger and the raw response payload, so the caller can persist the
	// payload for later re-decoding.
	//
	// The index on the returned Ledger is the one confirmed by the server,
	// which callers should prefer over the requested index when keying
	// storage (specifier semantics may differ by one).
	FetchLedger(ctx context.Context, index uint64) (Ledger, []byte, error)

	// DecodeLedger parses a payload previously returned by FetchLedger.
	DecodeLedger(payload []byte) (Ledger, error)
}
