package engine

import (
	"time"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/money"
)

var paymentStates = map[models.PSPPaymentStatus]models.TransactionState{
	models.PaymentStatusOpen:       models.StateInitial,
	models.PaymentStatusPending:    models.StatePending,
	models.PaymentStatusAuthorized: models.StateSuccess,
	models.PaymentStatusPaid:       models.StateSuccess,
	models.PaymentStatusCanceled:   models.StateFailure,
	models.PaymentStatusExpired:    models.StateFailure,
	models.PaymentStatusFailed:     models.StateFailure,
}

var refundStates = map[models.PSPRefundStatus]models.TransactionState{
	models.RefundStatusQueued:     models.StatePending,
	models.RefundStatusPending:    models.StatePending,
	models.RefundStatusProcessing: models.StatePending,
	models.RefundStatusRefunded:   models.StateSuccess,
	models.RefundStatusFailed:     models.StateFailure,
	models.RefundStatusCanceled:   models.StateFailure,
}

// Methods that authorize first and capture later.
var payLaterMethods = map[string]bool{
	"klarna":         true,
	"klarnapaylater": true,
	"klarnapaynow":   true,
	"klarnasliceit":  true,
	"billie":         true,
	"in3":            true,
	"riverty":        true,
}

func IsPayLater(method string) bool { return payLaterMethods[method] }

func MapPaymentStatus(s models.PSPPaymentStatus) (models.TransactionState, bool) {
	st, ok := paymentStates[s]
	return st, ok
}

func MapRefundStatus(s models.PSPRefundStatus) (models.TransactionState, bool) {
	st, ok := refundStates[s]
	return st, ok
}

// ShouldUpdatePayment is the update table for existing transactions. Only
// final PSP statuses move a transaction, and only when it differs.
func ShouldUpdatePayment(status models.PSPPaymentStatus, current models.TransactionState) bool {
	switch status {
	case models.PaymentStatusPaid, models.PaymentStatusAuthorized:
		return current != models.StateSuccess
	case models.PaymentStatusCanceled, models.PaymentStatusFailed, models.PaymentStatusExpired:
		return current != models.StateFailure
	default:
		return false
	}
}

// ShouldUpdateRefund moves a refund only when the target differs and never
// takes a finished transaction back to Pending.
func ShouldUpdateRefund(target, current models.TransactionState) bool {
	if target == current {
		return false
	}
	if target == models.StatePending && isFinal(current) {
		return false
	}
	return true
}

func isFinal(s models.TransactionState) bool {
	return s == models.StateSuccess || s == models.StateFailure
}

func findByInteractionID(txs []models.Transaction, id string) (models.Transaction, bool) {
	for _, tx := range txs {
		if tx.InteractionID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// ReconcilePayment returns nil when the platform already reflects the PSP
// payment status, which makes repeated webhook deliveries no-ops.
func ReconcilePayment(txs []models.Transaction, p models.PSPPayment) (models.UpdateAction, error) {
	target, known := MapPaymentStatus(p.Status)

	tx, found := findByInteractionID(txs, p.ID)
	if !found {
		if !known {
			return nil, nil
		}
		amount, err := money.ToInternal(p.Amount)
		if err != nil {
			return nil, err
		}
		txType := models.TransactionTypeCharge
		if IsPayLater(p.Method) {
			txType = models.TransactionTypeAuthorization
		}
		return models.NewAddTransaction(models.TransactionDraft{
			Type:          txType,
			Amount:        amount,
			State:         target,
			InteractionID: p.ID,
			Timestamp:     formatTimestamp(p.CreatedAt),
		}), nil
	}

	if !ShouldUpdatePayment(p.Status, tx.State) {
		return nil, nil
	}
	return models.NewChangeTransactionState(tx.ID, target), nil
}

// ReconcileRefund is the refund counterpart of ReconcilePayment. Refunds
// created outside the platform are added as new Refund transactions.
func ReconcileRefund(txs []models.Transaction, r models.PSPRefund) (models.UpdateAction, error) {
	target, known := MapRefundStatus(r.Status)
	if !known {
		return nil, nil
	}

	tx, found := findByInteractionID(txs, r.ID)
	if !found {
		amount, err := money.ToInternal(r.Amount)
		if err != nil {
			return nil, err
		}
		return models.NewAddTransaction(models.TransactionDraft{
			Type:          models.TransactionTypeRefund,
			Amount:        amount,
			State:         target,
			InteractionID: r.ID,
			Timestamp:     formatTimestamp(r.CreatedAt),
		}), nil
	}

	if !ShouldUpdateRefund(target, tx.State) {
		return nil, nil
	}
	return models.NewChangeTransactionState(tx.ID, target), nil
}

// Reconcile covers a PSP payment and its embedded refunds.
func Reconcile(txs []models.Transaction, p models.PSPPayment) ([]models.UpdateAction, error) {
	var actions []models.UpdateAction

	action, err := ReconcilePayment(txs, p)
	if err != nil {
		return nil, err
	}
	if action != nil {
		actions = append(actions, action)
	}

	for _, r := range p.Embedded.Refunds {
		action, err := ReconcileRefund(txs, r)
		if err != nil {
			return nil, err
		}
		if action != nil {
			actions = append(actions, action)
		}
	}
	return actions, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
