package ledgerfetch

import "time"

// TransactionResultSuccess is the engine result code rippled assigns to a
// transaction that executed successfully.
const TransactionResultSuccess = "tesSUCCESS"

// TransactionTypePayment is the declared type of a payment transaction.
const TransactionTypePayment = "Payment"

// LedgerEntryTypeAccountRoot identifies the on-ledger record that represents
// an account's existence and balance.
const LedgerEntryTypeAccountRoot = "AccountRoot"

// AmountKind discriminates the two representations a ledger amount can take.
type AmountKind int

const (
	// AmountXRP is a native amount denominated in drops.
	AmountXRP AmountKind = iota

	// AmountIssued is an issued-currency amount with a decimal value,
	// currency code, and issuing address.
	AmountIssued
)

// Amount is a tagged variant over the two ledger amount representations.
// Exactly the fields of the active case are meaningful; consumers switch on
// Kind and handle both cases.
type Amount struct {
	Kind AmountKind

	// Drops is the native amount in drops. Set when Kind is AmountXRP.
	Drops int64

	// Value, Currency, and Issuer describe an issued-currency amount.
	// Set when Kind is AmountIssued.
	Value    string
	Currency string
	Issuer   string
}

// AffectedNode summarizes one entry of a transaction's execution metadata:
// a ledger entry that the transaction created, modified, or deleted.
type AffectedNode struct {
	Created         bool   // true when the entry was newly created
	LedgerEntryType string // kind of ledger entry, e.g. "AccountRoot"
	NewAccount      string // account address from the new entry's initial fields, when present
}

// Transaction is one transaction of a ledger together with its execution
// metadata, reduced to the fields the indexing pipeline consumes.
type Transaction struct {
	Hash        string // unique transaction hash
	Type        string // declared transaction type, e.g. "Payment"
	Account     string // sender address
	Destination string // receiver address (payments only)
	Fee         int64  // fee in drops

	Amount          Amount  // declared amount
	DeliveredAmount *Amount // actually delivered amount, when reported by the metadata

	SourceTag      *uint32 // optional sender-side tag
	DestinationTag *uint32 // optional receiver-side tag

	Result        string         // engine result code, e.g. "tesSUCCESS"
	AffectedNodes []AffectedNode // ledger entries touched during execution
}

// Ledger is one settled ledger: its header attributes plus the transactions
// it contains.
type Ledger struct {
	Index      uint64     // sequential ledger index
	Hash       string     // unique ledger hash
	CloseTime  *time.Time // close time in UTC; nil only for the synthetic genesis ledger
	ParentHash string     // hash of the preceding ledger
	TotalCoins int64      // total XRP in existence, in drops
	Transactions []Transaction
}
