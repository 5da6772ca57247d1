package engine

import (
	"sort"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

// TransactionGroups buckets a payment's transactions by type and state.
// It is derived per invocation and never stored.
type TransactionGroups struct {
	InitialCharge              []models.Transaction
	PendingCharge              []models.Transaction
	SuccessCharge              []models.Transaction
	InitialRefund              []models.Transaction
	PendingRefund              []models.Transaction
	InitialCancelAuthorization []models.Transaction
	SuccessAuthorization       []models.Transaction
	PendingCapture             []models.Transaction
	FailureCapture             []models.Transaction
}

// Classify makes a single pass over txs. Combinations that need no further
// action (a successful refund, any chargeback) are dropped.
func Classify(txs []models.Transaction) TransactionGroups {
	var g TransactionGroups

	for _, tx := range txs {
		switch tx.State {
		case models.StateInitial:
			switch tx.Type {
			case models.TransactionTypeCharge:
				g.InitialCharge = append(g.InitialCharge, tx)
			case models.TransactionTypeRefund:
				g.InitialRefund = append(g.InitialRefund, tx)
			case models.TransactionTypeCancelAuthorization:
				g.InitialCancelAuthorization = append(g.InitialCancelAuthorization, tx)
			}
		case models.StatePending:
			switch tx.Type {
			case models.TransactionTypeCharge:
				if IsMarkedForCapture(tx) {
					g.PendingCapture = append(g.PendingCapture, tx)
				} else {
					g.PendingCharge = append(g.PendingCharge, tx)
				}
			case models.TransactionTypeRefund:
				g.PendingRefund = append(g.PendingRefund, tx)
			}
		case models.StateSuccess:
			switch tx.Type {
			case models.TransactionTypeCharge:
				g.SuccessCharge = append(g.SuccessCharge, tx)
			case models.TransactionTypeAuthorization:
				g.SuccessAuthorization = append(g.SuccessAuthorization, tx)
			}
		case models.StateFailure:
			if tx.Type == models.TransactionTypeCharge && (hasCaptureErrors(tx) || IsMarkedForCapture(tx)) {
				g.FailureCapture = append(g.FailureCapture, tx)
			}
		}
	}

	for _, bucket := range [][]models.Transaction{
		g.InitialCharge, g.PendingCharge, g.SuccessCharge,
		g.InitialRefund, g.PendingRefund, g.InitialCancelAuthorization,
		g.SuccessAuthorization, g.PendingCapture, g.FailureCapture,
	} {
		sortByTimestamp(bucket)
	}
	return g
}

// IsMarkedForCapture reports whether a Charge carries the capture flag.
func IsMarkedForCapture(tx models.Transaction) bool {
	return tx.Custom.Bool(models.FieldCapturePayment)
}

func hasCaptureErrors(tx models.Transaction) bool {
	return len(readCaptureErrors(tx)) > 0
}

// sortByTimestamp orders oldest first; transactions without a timestamp keep
// their relative order after the stamped ones.
func sortByTimestamp(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].Timestamp, txs[j].Timestamp
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}
