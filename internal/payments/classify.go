// Package payments classifies ledger transactions: it selects successfully
// executed payments and detects which of those activated a brand-new wallet
// account. All functions are pure and operate on already-fetched ledger
// data.
package payments

import (
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
)

// Eligible filters a ledger's transaction list down to payments whose
// execution metadata reports success. Eligibility is independent of whether
// the payment activated a new account.
func Eligible(txs []ledgerfetch.Transaction) []ledgerfetch.Transaction {
	eligible := make([]ledgerfetch.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Result == ledgerfetch.TransactionResultSuccess && tx.Type == ledgerfetch.TransactionTypePayment {
			eligible = append(eligible, tx)
		}
	}

	return eligible
}

// CreatedAccount returns the address of the account root newly created by
// the transaction's execution, if any. Only the first matching affected
// entry is considered; ledger semantics guarantee at most one new account
// root per payment.
func CreatedAccount(tx ledgerfetch.Transaction) (string, bool) {
	for _, node := range tx.AffectedNodes {
		if node.Created && node.LedgerEntryType == ledgerfetch.LedgerEntryTypeAccountRoot {
			return node.NewAccount, node.NewAccount != ""
		}
	}

	return "", false
}

// IsActivation reports whether the payment's execution brought a new wallet
// account into existence.
func IsActivation(tx ledgerfetch.Transaction) bool {
	_, ok := CreatedAccount(tx)
	return ok
}

// Activations filters an already-eligible payment list down to activation
// payments.
func Activations(txs []ledgerfetch.Transaction) []ledgerfetch.Transaction {
	activations := make([]ledgerfetch.Transaction, 0)
	for _, tx := range txs {
		if IsActivation(tx) {
			activations = append(activations, tx)
		}
	}

	return activations
}

// ActivationFunding returns the funding amount of an activation payment in
// drops. A funding payment denominated in an issued currency yields zero:
// account creation requires the XRP reserve, so this case should be
// unreachable in practice, but the zeroing mirrors observed chain data
// rather than rejecting the ledger.
func ActivationFunding(tx ledgerfetch.Transaction) int64 {
	switch tx.Amount.Kind {
	case ledgerfetch.AmountXRP:
		return tx.Amount.Drops
	case ledgerfetch.AmountIssued:
		return 0
	}

	return 0
}
