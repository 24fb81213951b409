// Package graphindex materializes ledger activity into the property graph.
// Every write is an idempotent upsert keyed by a natural unique identifier
// (ledger index, wallet address, payment hash), which is what makes
// re-processing a ledger after a partial failure safe.
package graphindex

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Writer performs idempotent upserts of ledgers, wallets, payments, and
// activations against the graph store.
type Writer struct {
	storage        GraphStorage
	genesisWallets []string
}

// Option configures the Writer.
type Option func(*Writer)

// WithGenesisWallets replaces the built-in genesis-era wallet list used by
// Bootstrap. Intended for tests, which bootstrap a short synthetic set.
func WithGenesisWallets(addresses []string) Option {
	return func(w *Writer) {
		w.genesisWallets = addresses
	}
}

// New creates a Writer backed by the given graph storage.
func New(storage GraphStorage, opts ...Option) *Writer {
	w := &Writer{
		storage:        storage,
		genesisWallets: defaultGenesisWallets,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// LedgerParams carries the attributes of a Ledger node.
type LedgerParams struct {
	Index      uint64
	Hash       string
	CloseTime  *time.Time // nil only for the synthetic genesis ledger
	ParentHash string
	TotalCoins int64
}

// PaymentParams carries the attributes of a Payment node and its PAYS /
// RECEIVES / CONTAINS relationships. Pointer and nil-able fields are
// optional: absent optionals are omitted from the write entirely, not set
// to null.
type PaymentParams struct {
	Hash        string
	Sender      string
	Receiver    string
	LedgerIndex uint64
	Date        *time.Time
	Fee         int64 // fee in drops
	IsActivation bool

	// Amount holds an int64 drop count for native payments or a float64
	// value for issued-currency payments, matching how the property is
	// stored on the node.
	Amount               any
	AmountCurrency       string
	AmountCurrencyIssuer *string

	// Delivered* describe the actually-delivered amount when the execution
	// metadata reports one. DeliveredAmount follows the same int64/float64
	// convention as Amount; nil means not reported.
	DeliveredAmount         any
	DeliveredCurrency       *string
	DeliveredCurrencyIssuer *string

	SourceTag      *uint32
	DestinationTag *uint32
}

// ActivationParams carries the attributes of an ACTIVATES relationship from
// a parent wallet to the child wallet it funded, anchored to the containing
// ledger.
type ActivationParams struct {
	Parent      string
	Child       string
	LedgerIndex uint64
	Hash        string     // causing transaction hash, or a synthetic value for bootstrap
	Date        *time.Time // nil for synthetic genesis activations
	Amount      int64      // funding amount in drops; zero for issued-currency funding
}

const upsertLedgerQuery = `
MERGE (ledger:Ledger { ledgerIndex: $ledgerIndex })
ON CREATE SET
 ledger.ledgerHash = $ledgerHash,
 ledger.closeTime = datetime($closeTime),
 ledger.parentHash = $parentHash,
 ledger.totalCoins = $totalCoins
RETURN ledger.ledgerIndex AS ledgerIndex`

// UpsertLedger creates the Ledger node for the given index if absent.
// Attributes are set only on create; an existing ledger is never mutated.
func (w *Writer) UpsertLedger(ctx context.Context, p LedgerParams) error {
	_, err := w.storage.RunWrite(ctx, upsertLedgerQuery, map[string]any{
		"ledgerIndex": int64(p.Index),
		"ledgerHash":  p.Hash,
		"closeTime":   datetimeParam(p.CloseTime),
		"parentHash":  p.ParentHash,
		"totalCoins":  p.TotalCoins,
	})
	if err != nil {
		return fmt.Errorf("upsert ledger %d: %w", p.Index, err)
	}

	return nil
}

const upsertWalletQuery = `
MERGE (wallet:Wallet { address: $address })
RETURN wallet.address AS address`

// UpsertWallet creates the Wallet node for the given address if absent.
func (w *Writer) UpsertWallet(ctx context.Context, address string) error {
	_, err := w.storage.RunWrite(ctx, upsertWalletQuery, map[string]any{
		"address": address,
	})
	if err != nil {
		return fmt.Errorf("upsert wallet %s: %w", address, err)
	}

	return nil
}

const linkLedgerPaymentQuery = `
MATCH (ledger:Ledger { ledgerIndex: $ledgerIndex })
MATCH (payment:Payment { hash: $hash })
MERGE (ledger)-[:CONTAINS]-(payment)
RETURN payment.hash AS hash`

// UpsertPayment creates the Payment node keyed by hash together with its
// PAYS and RECEIVES relationships, then links the containing ledger via
// CONTAINS. Sender and receiver wallets and the ledger must already exist;
// ErrPrerequisiteMissing is returned otherwise.
func (w *Writer) UpsertPayment(ctx context.Context, p PaymentParams) error {
	params := map[string]any{
		"sender":         p.Sender,
		"receiver":       p.Receiver,
		"hash":           p.Hash,
		"date":           datetimeParam(p.Date),
		"ledgerIndex":    int64(p.LedgerIndex),
		"fee":            p.Fee,
		"isActivation":   p.IsActivation,
		"amount":         p.Amount,
		"amountCurrency": p.AmountCurrency,
	}

	var query strings.Builder
	query.WriteString(`
MATCH (sender:Wallet { address: $sender })
MATCH (receiver:Wallet { address: $receiver })
MERGE (sender)-[:PAYS]->(payment:Payment { hash: $hash })-[:RECEIVES]->(receiver)
ON CREATE SET
 payment.date = datetime($date),
 payment.ledgerIndex = $ledgerIndex,
 payment.fee = $fee,
 payment.isActivation = $isActivation,
 payment.amount = $amount,
 payment.amountCurrency = $amountCurrency`)

	// Optional attributes are appended only when present in the input.
	if p.AmountCurrencyIssuer != nil {
		query.WriteString(",\n payment.amountCurrencyIssuer = $amountCurrencyIssuer")
		params["amountCurrencyIssuer"] = *p.AmountCurrencyIssuer
	}
	if p.SourceTag != nil {
		query.WriteString(",\n payment.sourceTag = $sourceTag")
		params["sourceTag"] = int64(*p.SourceTag)
	}
	if p.DestinationTag != nil {
		query.WriteString(",\n payment.destinationTag = $destinationTag")
		params["destinationTag"] = int64(*p.DestinationTag)
	}
	if p.DeliveredAmount != nil {
		query.WriteString(",\n payment.deliveredAmount = $deliveredAmount")
		params["deliveredAmount"] = p.DeliveredAmount
	}
	if p.DeliveredCurrency != nil {
		query.WriteString(",\n payment.deliveredCurrency = $deliveredCurrency")
		params["deliveredCurrency"] = *p.DeliveredCurrency
	}
	if p.DeliveredCurrencyIssuer != nil {
		query.WriteString(",\n payment.deliveredCurrencyIssuer = $deliveredCurrencyIssuer")
		params["deliveredCurrencyIssuer"] = *p.DeliveredCurrencyIssuer
	}

	query.WriteString("\nRETURN payment.hash AS hash")

	rows, err := w.storage.RunWrite(ctx, query.String(), params)
	if err != nil {
		return fmt.Errorf("upsert payment %s: %w", p.Hash, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("upsert payment %s: sender or receiver wallet: %w", p.Hash, ErrPrerequisiteMissing)
	}

	rows, err = w.storage.RunWrite(ctx, linkLedgerPaymentQuery, map[string]any{
		"ledgerIndex": int64(p.LedgerIndex),
		"hash":        p.Hash,
	})
	if err != nil {
		return fmt.Errorf("link payment %s to ledger %d: %w", p.Hash, p.LedgerIndex, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("link payment %s to ledger %d: %w", p.Hash, p.LedgerIndex, ErrPrerequisiteMissing)
	}

	return nil
}

const upsertActivationQuery = `
MATCH (parent:Wallet { address: $parent })
MATCH (child:Wallet { address: $child })
MATCH (ledger:Ledger { ledgerIndex: $ledgerIndex })
MERGE (parent)-[activation:ACTIVATES]->(child)<-[:ACTIVATES]-(ledger)
ON CREATE SET
 activation.date = datetime($date),
 activation.hash = $hash,
 activation.ledgerIndex = $ledgerIndex,
 activation.amount = $amount
RETURN child.address AS child`

// UpsertActivation creates the ACTIVATES relationship from parent to child
// wallet, anchored by a second ACTIVATES edge from the containing ledger.
// Parent wallet, child wallet, and ledger must already exist;
// ErrPrerequisiteMissing is returned otherwise. A wallet is activated at
// most once: re-running the upsert matches the existing relationship and
// leaves its attributes untouched.
func (w *Writer) UpsertActivation(ctx context.Context, p ActivationParams) error {
	rows, err := w.storage.RunWrite(ctx, upsertActivationQuery, map[string]any{
		"parent":      p.Parent,
		"child":       p.Child,
		"ledgerIndex": int64(p.LedgerIndex),
		"hash":        p.Hash,
		"date":        datetimeParam(p.Date),
		"amount":      p.Amount,
	})
	if err != nil {
		return fmt.Errorf("upsert activation %s -> %s: %w", p.Parent, p.Child, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("upsert activation %s -> %s: wallet or ledger: %w", p.Parent, p.Child, ErrPrerequisiteMissing)
	}

	return nil
}

// datetimeParam renders an optional timestamp as the string argument for
// Cypher's datetime(). A nil input yields nil, and datetime(null) stores
// null.
func datetimeParam(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.UTC().Format(time.RFC3339Nano)
}
