package engine

import "github.com/akylbek/payment-system/psp-connector/internal/apperr"

const (
	MsgMultipleInitialCharges   = "Only one transaction can be in Initial state at any time."
	MsgConcurrentChargeInFlight = "Must only have one Charge transaction processing at a time."
)

// Validate enforces the two hard charge invariants. Any other combination of
// buckets is legal.
func Validate(g TransactionGroups) error {
	if len(g.InitialCharge) > 1 {
		return apperr.InvalidErr(apperr.CodeInvalidOperation, MsgMultipleInitialCharges)
	}
	if len(g.InitialCharge) == 1 && len(g.PendingCharge) >= 1 {
		return apperr.InvalidErr(apperr.CodeInvalidOperation, MsgConcurrentChargeInFlight)
	}
	return nil
}
