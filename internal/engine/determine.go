package engine

import (
	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

// DetermineAction picks the next action for a payment snapshot. The custom
// field requests are checked before any transaction is classified. On an
// invariant violation it returns NoAction with the message and the error.
func DetermineAction(p *models.Payment) (DeterminedAction, error) {
	if p == nil {
		return DeterminedAction{Action: NoAction}, apperr.InvalidErr(apperr.CodeInvalidInput, "cannot determine action without a payment")
	}

	if p.Custom.Has(models.FieldPaymentMethodsRequest) && !p.Custom.Has(models.FieldPaymentMethodsResponse) {
		return DeterminedAction{Action: GetPaymentMethods}, nil
	}
	if _, ok := p.Custom.String(models.FieldApplePaySessionRequest); ok {
		return DeterminedAction{Action: GetApplePaySession}, nil
	}

	g := Classify(p.Transactions)
	if err := Validate(g); err != nil {
		ae, _ := apperr.As(err)
		return DeterminedAction{Action: NoAction, Message: ae.Message}, err
	}
	return DeterminedAction{Action: ActionFor(g)}, nil
}

// ActionFor evaluates the predicates in order; the first match wins because
// the groups are not mutually exclusive.
func ActionFor(g TransactionGroups) ConnectorAction {
	switch {
	case shouldCreatePayment(g):
		return CreatePayment
	case shouldCancelPayment(g):
		return CancelPayment
	case shouldCreateRefund(g):
		return CreateRefund
	case shouldCancelRefund(g):
		return CancelRefund
	case shouldCapturePayment(g):
		return CapturePayment
	default:
		return NoAction
	}
}

func shouldCreatePayment(g TransactionGroups) bool {
	return len(g.InitialCharge) == 1 && len(g.SuccessCharge) == 0 && len(g.PendingCharge) == 0
}

func shouldCancelPayment(g TransactionGroups) bool {
	return len(g.SuccessAuthorization) == 1 && len(g.InitialCancelAuthorization) == 1 && len(g.PendingRefund) != 1
}

func shouldCreateRefund(g TransactionGroups) bool {
	return len(g.SuccessCharge) >= 1 && len(g.InitialRefund) >= 1
}

func shouldCancelRefund(g TransactionGroups) bool {
	return len(g.SuccessCharge) >= 1 && len(g.PendingRefund) >= 1 && len(g.InitialCancelAuthorization) == 1
}

func shouldCapturePayment(g TransactionGroups) bool {
	return (len(g.FailureCapture) >= 1 || len(g.PendingCapture) >= 1) && len(g.SuccessAuthorization) >= 1
}
