package ingest

import (
	"fmt"
	"strconv"

	"github.com/gabapcia/ledgergraph/internal/graphindex"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/payments"
)

// nativeCurrencyCode is the currency label stored for native-amount
// payments.
const nativeCurrencyCode = "xrp"

// ledgerParams maps a fetched ledger header onto graph write parameters.
func ledgerParams(l ledgerfetch.Ledger) graphindex.LedgerParams {
	return graphindex.LedgerParams{
		Index:      l.Index,
		Hash:       l.Hash,
		CloseTime:  l.CloseTime,
		ParentHash: l.ParentHash,
		TotalCoins: l.TotalCoins,
	}
}

// amountProperties expands a tagged amount into the property triple stored
// on a Payment node: the value (int64 drops for native, float64 for issued
// currencies), the currency code, and the optional issuer.
func amountProperties(a ledgerfetch.Amount) (any, string, *string, error) {
	switch a.Kind {
	case ledgerfetch.AmountXRP:
		return a.Drops, nativeCurrencyCode, nil, nil
	case ledgerfetch.AmountIssued:
		value, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			return nil, "", nil, fmt.Errorf("parse issued amount %q: %w", a.Value, err)
		}

		issuer := a.Issuer
		return value, a.Currency, &issuer, nil
	}

	return nil, "", nil, fmt.Errorf("unknown amount kind %d", a.Kind)
}

// paymentParams maps an eligible payment transaction onto graph write
// parameters. Optional wire fields stay optional: they are left nil so the
// writer omits them entirely.
func paymentParams(l ledgerfetch.Ledger, tx ledgerfetch.Transaction) (graphindex.PaymentParams, error) {
	amount, currency, issuer, err := amountProperties(tx.Amount)
	if err != nil {
		return graphindex.PaymentParams{}, fmt.Errorf("payment %s: %w", tx.Hash, err)
	}

	p := graphindex.PaymentParams{
		Hash:                 tx.Hash,
		Sender:               tx.Account,
		Receiver:             tx.Destination,
		LedgerIndex:          l.Index,
		Date:                 l.CloseTime,
		Fee:                  tx.Fee,
		IsActivation:         payments.IsActivation(tx),
		Amount:               amount,
		AmountCurrency:       currency,
		AmountCurrencyIssuer: issuer,
		SourceTag:            tx.SourceTag,
		DestinationTag:       tx.DestinationTag,
	}

	if tx.DeliveredAmount != nil {
		delivered, deliveredCurrency, deliveredIssuer, err := amountProperties(*tx.DeliveredAmount)
		if err != nil {
			return graphindex.PaymentParams{}, fmt.Errorf("payment %s: delivered: %w", tx.Hash, err)
		}

		p.DeliveredAmount = delivered
		p.DeliveredCurrency = &deliveredCurrency
		p.DeliveredCurrencyIssuer = deliveredIssuer
	}

	return p, nil
}

// activationParams maps an activation payment onto graph write parameters
// for the ACTIVATES relationship it produces.
func activationParams(l ledgerfetch.Ledger, tx ledgerfetch.Transaction, child string) graphindex.ActivationParams {
	return graphindex.ActivationParams{
		Parent:      tx.Account,
		Child:       child,
		LedgerIndex: l.Index,
		Hash:        tx.Hash,
		Date:        l.CloseTime,
		Amount:      payments.ActivationFunding(tx),
	}
}
