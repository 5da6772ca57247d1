package engine

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

const (
	StatusTextPaymentCanceled = "Payment canceled at the PSP"
	StatusTextRefundCanceled  = "Refund canceled at the PSP"

	interactionCreatePayment = "createPayment"
)

// Synthesizer turns PSP outcomes into ordered platform update instructions.
// Interaction ids and timestamps come from the injected sources.
type Synthesizer struct {
	now   func() time.Time
	newID func() string
}

func NewSynthesizer(now func() time.Time, newID func() string) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Synthesizer{now: now, newID: newID}
}

type createPaymentResponse struct {
	PaymentID     string `json:"molliePaymentId"`
	CheckoutURL   string `json:"checkoutUrl,omitempty"`
	TransactionID string `json:"transactionId"`
}

// PaymentCreated records what was asked and answered before the interaction
// id is set and the state flips to Pending.
func (s *Synthesizer) PaymentCreated(tx models.Transaction, params models.CreatePaymentParams, p models.PSPPayment) ([]models.UpdateAction, error) {
	request, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	response, err := json.Marshal(createPaymentResponse{
		PaymentID:     p.ID,
		CheckoutURL:   p.CheckoutURL(),
		TransactionID: tx.ID,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return []models.UpdateAction{
		models.NewAddInterfaceInteraction(models.InterfaceInteractionFields{
			ID:         s.newID(),
			ActionType: interactionCreatePayment,
			CreatedAt:  now.UTC().Format(time.RFC3339),
			Request:    string(request),
			Response:   string(response),
		}),
		models.NewChangeTransactionInteractionID(tx.ID, p.ID),
		models.NewChangeTransactionTimestamp(tx.ID, createdAt),
		models.NewChangeTransactionState(tx.ID, models.StatePending),
	}, nil
}

func (s *Synthesizer) RefundCreated(refundTx models.Transaction, r models.PSPRefund) []models.UpdateAction {
	return []models.UpdateAction{
		models.NewChangeTransactionInteractionID(refundTx.ID, r.ID),
		models.NewChangeTransactionState(refundTx.ID, models.StatePending),
	}
}

// Canceled fails the target, stores the merged cancel reason on it and
// completes the CancelAuthorization request. The requested reason must
// parse; an unreadable reason already on the target is replaced.
func (s *Synthesizer) Canceled(target, request models.Transaction, statusText string) ([]models.UpdateAction, error) {
	requested, err := readCancelReason(request, true)
	if err != nil {
		return nil, err
	}
	merged, _ := readCancelReason(target, false)
	if requested.ReasonText != "" {
		merged.ReasonText = requested.ReasonText
	}
	merged.StatusText = statusText

	encoded, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}

	return []models.UpdateAction{
		models.NewChangeTransactionState(target.ID, models.StateFailure),
		models.NewSetTransactionCustomField(target.ID, models.FieldCancelReason, string(encoded)),
		models.NewChangeTransactionState(request.ID, models.StateSuccess),
	}, nil
}

// Captured settles a capture. A pending charge moves to Success; a failed one
// cannot leave Failure, so a new successful Charge is added instead.
func (s *Synthesizer) Captured(tx models.Transaction, c models.PSPCapture) []models.UpdateAction {
	if tx.State == models.StateFailure {
		ts := c.CreatedAt
		if ts.IsZero() {
			ts = s.now()
		}
		return []models.UpdateAction{
			models.NewAddTransaction(models.TransactionDraft{
				Type:          models.TransactionTypeCharge,
				Amount:        tx.Amount,
				State:         models.StateSuccess,
				InteractionID: c.ID,
				Timestamp:     ts.UTC().Format(time.RFC3339),
			}),
			models.NewSetTransactionCustomField(tx.ID, models.FieldCapturePayment, false),
		}
	}
	return []models.UpdateAction{
		models.NewChangeTransactionState(tx.ID, models.StateSuccess),
		models.NewSetTransactionCustomField(tx.ID, models.FieldCapturePayment, false),
	}
}

func (s *Synthesizer) CaptureFailed(tx models.Transaction, reason string) ([]models.UpdateAction, error) {
	errs := append(readCaptureErrors(tx), reason)
	encoded, err := json.Marshal(errs)
	if err != nil {
		return nil, err
	}

	actions := []models.UpdateAction{
		models.NewSetTransactionCustomField(tx.ID, models.FieldCaptureErrors, string(encoded)),
		models.NewSetTransactionCustomField(tx.ID, models.FieldCapturePayment, false),
	}
	if tx.State == models.StatePending {
		actions = append(actions, models.NewChangeTransactionState(tx.ID, models.StateFailure))
	}
	return actions, nil
}

func (s *Synthesizer) PaymentMethods(methods []models.PSPMethod, opts Options) ([]models.UpdateAction, error) {
	resp := models.PaymentMethodsResponse{
		Count:                  len(methods),
		Methods:                make([]models.PaymentMethod, 0, len(methods)),
		IsCardComponentEnabled: opts.CardComponentEnabled,
	}
	for _, m := range methods {
		resp.Methods = append(resp.Methods, models.PaymentMethod{
			ID:     m.ID,
			Name:   m.Description,
			Status: m.Status,
			Image:  m.Image,
		})
	}

	encoded, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return []models.UpdateAction{
		models.NewSetCustomField(models.FieldPaymentMethodsResponse, string(encoded)),
	}, nil
}

// ApplePaySession stores the session and clears the request so the next
// update does not ask again.
func (s *Synthesizer) ApplePaySession(session models.ApplePaySession) []models.UpdateAction {
	return []models.UpdateAction{
		models.NewSetCustomField(models.FieldApplePaySessionResponse, string(session)),
		models.NewSetCustomField(models.FieldApplePaySessionRequest, nil),
	}
}
