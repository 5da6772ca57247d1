package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

func TestClassify(t *testing.T) {
	txs := []models.Transaction{
		newTx("c-init", models.TransactionTypeCharge, models.StateInitial),
		newTx("c-pend", models.TransactionTypeCharge, models.StatePending),
		newTx("c-capt", models.TransactionTypeCharge, models.StatePending, withField(models.FieldCapturePayment, true)),
		newTx("c-ok", models.TransactionTypeCharge, models.StateSuccess),
		newTx("c-fail-err", models.TransactionTypeCharge, models.StateFailure, withField(models.FieldCaptureErrors, `["declined"]`)),
		newTx("c-fail-flag", models.TransactionTypeCharge, models.StateFailure, withField(models.FieldCapturePayment, "true")),
		newTx("c-fail", models.TransactionTypeCharge, models.StateFailure),
		newTx("r-init", models.TransactionTypeRefund, models.StateInitial),
		newTx("r-pend", models.TransactionTypeRefund, models.StatePending),
		newTx("r-ok", models.TransactionTypeRefund, models.StateSuccess),
		newTx("ca-init", models.TransactionTypeCancelAuthorization, models.StateInitial),
		newTx("a-ok", models.TransactionTypeAuthorization, models.StateSuccess),
		newTx("cb", models.TransactionTypeChargeback, models.StateSuccess),
	}

	g := Classify(txs)

	ids := func(bucket []models.Transaction) []string {
		out := []string{}
		for _, tx := range bucket {
			out = append(out, tx.ID)
		}
		return out
	}

	assert.Equal(t, []string{"c-init"}, ids(g.InitialCharge))
	assert.Equal(t, []string{"c-pend"}, ids(g.PendingCharge))
	assert.Equal(t, []string{"c-capt"}, ids(g.PendingCapture))
	assert.Equal(t, []string{"c-ok"}, ids(g.SuccessCharge))
	assert.Equal(t, []string{"c-fail-err", "c-fail-flag"}, ids(g.FailureCapture))
	assert.Equal(t, []string{"r-init"}, ids(g.InitialRefund))
	assert.Equal(t, []string{"r-pend"}, ids(g.PendingRefund))
	assert.Equal(t, []string{"ca-init"}, ids(g.InitialCancelAuthorization))
	assert.Equal(t, []string{"a-ok"}, ids(g.SuccessAuthorization))
}

func TestClassifyEmpty(t *testing.T) {
	assert.Equal(t, TransactionGroups{}, Classify(nil))
}

func TestClassifyOrdersByTimestamp(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		newTx("no-ts", models.TransactionTypeRefund, models.StateInitial),
		newTx("late", models.TransactionTypeRefund, models.StateInitial, withTimestamp(base.Add(time.Hour))),
		newTx("early", models.TransactionTypeRefund, models.StateInitial, withTimestamp(base)),
	}

	g := Classify(txs)

	assert.Equal(t, "early", g.InitialRefund[0].ID)
	assert.Equal(t, "late", g.InitialRefund[1].ID)
	assert.Equal(t, "no-ts", g.InitialRefund[2].ID)
	// input order untouched
	assert.Equal(t, "no-ts", txs[0].ID)
}

func TestClassifyEmptyCaptureErrorsIsNotFailureCapture(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":        "[]",
		"spaced":       "[ ]",
		"null":         "null",
		"newline":      "[]\n",
		"unparsable":   "not json",
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			g := Classify([]models.Transaction{
				newTx("c", models.TransactionTypeCharge, models.StateFailure, withField(models.FieldCaptureErrors, raw)),
			})
			assert.Empty(t, g.FailureCapture)
		})
	}
}
