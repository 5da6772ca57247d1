// Package engine holds the connector's pure decision logic: transaction
// classification, invariant checks, action determination, PSP status
// reconciliation and update-instruction synthesis. Nothing here performs I/O.
package engine

// ConnectorAction is the single next step the connector takes for a payment.
// Consumers switch over every value; adding one must be handled everywhere.
type ConnectorAction int

const (
	NoAction ConnectorAction = iota
	CreatePayment
	CancelPayment
	CreateRefund
	CancelRefund
	CapturePayment
	GetPaymentMethods
	GetApplePaySession
)

func (a ConnectorAction) String() string {
	switch a {
	case NoAction:
		return "NoAction"
	case CreatePayment:
		return "CreatePayment"
	case CancelPayment:
		return "CancelPayment"
	case CreateRefund:
		return "CreateRefund"
	case CancelRefund:
		return "CancelRefund"
	case CapturePayment:
		return "CapturePayment"
	case GetPaymentMethods:
		return "GetPaymentMethods"
	case GetApplePaySession:
		return "GetApplePaySession"
	}
	return "Unknown"
}

// DeterminedAction is the determiner's output. Message is set when the
// outcome is NoAction because validation failed.
type DeterminedAction struct {
	Action  ConnectorAction
	Message string
}
