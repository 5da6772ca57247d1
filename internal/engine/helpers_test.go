package engine

import (
	"time"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

func eur(cents int64) models.Money {
	return models.Money{Type: "centPrecision", CurrencyCode: "EUR", CentAmount: cents, FractionDigits: 2}
}

type txOption func(*models.Transaction)

func withInteraction(id string) txOption {
	return func(tx *models.Transaction) { tx.InteractionID = id }
}

func withAmount(cents int64) txOption {
	return func(tx *models.Transaction) { tx.Amount = eur(cents) }
}

func withField(name string, value any) txOption {
	return func(tx *models.Transaction) {
		if tx.Custom == nil {
			tx.Custom = &models.CustomFields{Fields: map[string]any{}}
		}
		tx.Custom.Fields[name] = value
	}
}

func withTimestamp(ts time.Time) txOption {
	return func(tx *models.Transaction) { tx.Timestamp = &ts }
}

func newTx(id string, typ models.TransactionType, state models.TransactionState, opts ...txOption) models.Transaction {
	tx := models.Transaction{ID: id, Type: typ, State: state, Amount: eur(1000)}
	for _, opt := range opts {
		opt(&tx)
	}
	return tx
}

func newPayment(txs ...models.Transaction) *models.Payment {
	return &models.Payment{
		ID:            "pay-1",
		Version:       3,
		AmountPlanned: eur(1000),
		PaymentMethodInfo: models.PaymentMethodInfo{
			PaymentInterface: "mollie",
			Method:           "ideal",
		},
		Transactions: txs,
	}
}

func withPaymentField(p *models.Payment, name string, value any) *models.Payment {
	if p.Custom == nil {
		p.Custom = &models.CustomFields{Fields: map[string]any{}}
	}
	p.Custom.Fields[name] = value
	return p
}
