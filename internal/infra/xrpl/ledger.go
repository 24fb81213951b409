package xrpl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
)

// rippleEpochOffset converts ripple epoch seconds (since 2000-01-01 UTC) to
// Unix seconds.
const rippleEpochOffset = 946684800

type (
	// newFieldsResponse holds the initial field set of a newly created
	// ledger entry. Only the account address is consumed.
	newFieldsResponse struct {
		Account string `json:"Account"`
	}

	// nodeDetailResponse describes one created/modified/deleted ledger
	// entry inside a transaction's metadata.
	nodeDetailResponse struct {
		LedgerEntryType string             `json:"LedgerEntryType"`
		NewFields       *newFieldsResponse `json:"NewFields"`
	}

	// affectedNodeResponse is the tagged wrapper rippled uses for affected
	// ledger entries: exactly one of the three fields is set.
	affectedNodeResponse struct {
		CreatedNode  *nodeDetailResponse `json:"CreatedNode"`
		ModifiedNode *nodeDetailResponse `json:"ModifiedNode"`
		DeletedNode  *nodeDetailResponse `json:"DeletedNode"`
	}

	// metadataResponse is the execution metadata attached to a settled
	// transaction.
	metadataResponse struct {
		TransactionResult string                 `json:"TransactionResult"`
		AffectedNodes     []affectedNodeResponse `json:"AffectedNodes"`
		DeliveredAmount   json.RawMessage        `json:"delivered_amount"`
	}

	// transactionResponse is one expanded transaction of a ledger. Amount
	// is kept raw: it is either a drop-count string or an issued-currency
	// object.
	transactionResponse struct {
		Hash            string            `json:"hash"`
		TransactionType string            `json:"TransactionType"`
		Account         string            `json:"Account"`
		Destination     string            `json:"Destination"`
		Fee             string            `json:"Fee"`
		Amount          json.RawMessage   `json:"Amount"`
		SourceTag       *uint32           `json:"SourceTag"`
		DestinationTag  *uint32           `json:"DestinationTag"`
		Meta            *metadataResponse `json:"metaData"`
	}

	// ledgerResponse is the ledger header with its expanded transactions.
	ledgerResponse struct {
		LedgerHash   string                `json:"ledger_hash"`
		LedgerIndex  string                `json:"ledger_index"`
		ParentHash   string                `json:"parent_hash"`
		TotalCoins   string                `json:"total_coins"`
		CloseTime    int64                 `json:"close_time"`
		Transactions []transactionResponse `json:"transactions"`
	}

	// ledgerResult is the payload of a successful "ledger" method call.
	ledgerResult struct {
		Ledger      ledgerResponse `json:"ledger"`
		LedgerIndex uint64         `json:"ledger_index"`
		Validated   bool           `json:"validated"`
	}
)

// issuedAmountResponse is the object form of an amount: an issued-currency
// value with its currency code and issuing address.
type issuedAmountResponse struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// parseAmount decodes a raw amount into the domain's tagged variant. A JSON
// string is a native drop count; an object is an issued-currency amount.
func parseAmount(raw json.RawMessage) (ledgerfetch.Amount, error) {
	var drops string
	if err := json.Unmarshal(raw, &drops); err == nil {
		value, err := strconv.ParseInt(drops, 10, 64)
		if err != nil {
			return ledgerfetch.Amount{}, fmt.Errorf("parse drop amount %q: %w", drops, err)
		}

		return ledgerfetch.Amount{Kind: ledgerfetch.AmountXRP, Drops: value}, nil
	}

	var issued issuedAmountResponse
	if err := json.Unmarshal(raw, &issued); err != nil {
		return ledgerfetch.Amount{}, fmt.Errorf("parse issued amount: %w", err)
	}

	return ledgerfetch.Amount{
		Kind:     ledgerfetch.AmountIssued,
		Value:    issued.Value,
		Currency: issued.Currency,
		Issuer:   issued.Issuer,
	}, nil
}

// toDomainAffectedNode reduces a tagged affected-node wrapper to the
// summary the classifier consumes.
func (n affectedNodeResponse) toDomainAffectedNode() ledgerfetch.AffectedNode {
	switch {
	case n.CreatedNode != nil:
		node := ledgerfetch.AffectedNode{
			Created:         true,
			LedgerEntryType: n.CreatedNode.LedgerEntryType,
		}
		if n.CreatedNode.NewFields != nil {
			node.NewAccount = n.CreatedNode.NewFields.Account
		}
		return node
	case n.ModifiedNode != nil:
		return ledgerfetch.AffectedNode{LedgerEntryType: n.ModifiedNode.LedgerEntryType}
	case n.DeletedNode != nil:
		return ledgerfetch.AffectedNode{LedgerEntryType: n.DeletedNode.LedgerEntryType}
	}

	return ledgerfetch.AffectedNode{}
}

// toDomainTransaction converts a wire transaction into the domain type.
func (t transactionResponse) toDomainTransaction() (ledgerfetch.Transaction, error) {
	tx := ledgerfetch.Transaction{
		Hash:           t.Hash,
		Type:           t.TransactionType,
		Account:        t.Account,
		Destination:    t.Destination,
		SourceTag:      t.SourceTag,
		DestinationTag: t.DestinationTag,
	}

	if t.Fee != "" {
		fee, err := strconv.ParseInt(t.Fee, 10, 64)
		if err != nil {
			return ledgerfetch.Transaction{}, fmt.Errorf("transaction %s: parse fee %q: %w", t.Hash, t.Fee, err)
		}
		tx.Fee = fee
	}

	if len(t.Amount) > 0 {
		amount, err := parseAmount(t.Amount)
		if err != nil {
			return ledgerfetch.Transaction{}, fmt.Errorf("transaction %s: %w", t.Hash, err)
		}
		tx.Amount = amount
	}

	if t.Meta != nil {
		tx.Result = t.Meta.TransactionResult

		tx.AffectedNodes = make([]ledgerfetch.AffectedNode, len(t.Meta.AffectedNodes))
		for i, node := range t.Meta.AffectedNodes {
			tx.AffectedNodes[i] = node.toDomainAffectedNode()
		}

		if len(t.Meta.DeliveredAmount) > 0 {
			delivered, err := parseAmount(t.Meta.DeliveredAmount)
			if err != nil {
				return ledgerfetch.Transaction{}, fmt.Errorf("transaction %s: delivered: %w", t.Hash, err)
			}
			tx.DeliveredAmount = &delivered
		}
	}

	return tx, nil
}

// toDomainLedger converts a decoded result into the domain ledger.
func (r ledgerResult) toDomainLedger() (ledgerfetch.Ledger, error) {
	index, err := strconv.ParseUint(r.Ledger.LedgerIndex, 10, 64)
	if err != nil {
		return ledgerfetch.Ledger{}, fmt.Errorf("parse ledger index %q: %w", r.Ledger.LedgerIndex, err)
	}

	totalCoins, err := strconv.ParseInt(r.Ledger.TotalCoins, 10, 64)
	if err != nil {
		return ledgerfetch.Ledger{}, fmt.Errorf("ledger %d: parse total coins %q: %w", index, r.Ledger.TotalCoins, err)
	}

	ledger := ledgerfetch.Ledger{
		Index:      index,
		Hash:       r.Ledger.LedgerHash,
		ParentHash: r.Ledger.ParentHash,
		TotalCoins: totalCoins,
	}

	if r.Ledger.CloseTime > 0 {
		closeTime := time.Unix(r.Ledger.CloseTime+rippleEpochOffset, 0).UTC()
		ledger.CloseTime = &closeTime
	}

	ledger.Transactions = make([]ledgerfetch.Transaction, len(r.Ledger.Transactions))
	for i, t := range r.Ledger.Transactions {
		tx, err := t.toDomainTransaction()
		if err != nil {
			return ledgerfetch.Ledger{}, fmt.Errorf("ledger %d: %w", index, err)
		}
		ledger.Transactions[i] = tx
	}

	return ledger, nil
}
