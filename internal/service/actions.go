package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/engine"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

func (p *Processor) createPayment(ctx context.Context, payment *models.Payment, g engine.TransactionGroups) ([]models.UpdateAction, error) {
	tx := g.InitialCharge[0]
	params, err := engine.BuildCreatePaymentParams(payment, tx, p.opts)
	if err != nil {
		return nil, err
	}

	created, err := p.psp.CreatePayment(ctx, params)
	if err != nil {
		return nil, err
	}
	return p.synth.PaymentCreated(tx, params, *created)
}

func (p *Processor) cancelPayment(ctx context.Context, g engine.TransactionGroups) ([]models.UpdateAction, error) {
	target := g.SuccessAuthorization[0]
	request := g.InitialCancelAuthorization[0]

	// Synthesize first so an unreadable cancel reason stops us before the PSP is touched.
	actions, err := p.synth.Canceled(target, request, engine.StatusTextPaymentCanceled)
	if err != nil {
		return nil, err
	}
	if target.InteractionID == "" {
		return nil, apperr.NotFoundErr(fmt.Sprintf("authorization %s has no PSP payment", target.ID))
	}
	if _, err := p.psp.CancelPayment(ctx, target.InteractionID); err != nil {
		return nil, err
	}
	return actions, nil
}

func (p *Processor) createRefund(ctx context.Context, payment *models.Payment, g engine.TransactionGroups) ([]models.UpdateAction, error) {
	refundTx := g.InitialRefund[0]
	charge := g.SuccessCharge[0]
	if charge.InteractionID == "" {
		return nil, apperr.NotFoundErr(fmt.Sprintf("charge %s has no PSP payment", charge.ID))
	}

	refund, err := p.psp.CreateRefund(ctx, charge.InteractionID, engine.BuildRefundParams(payment, refundTx))
	if err != nil {
		return nil, err
	}
	return p.synth.RefundCreated(refundTx, *refund), nil
}

func (p *Processor) cancelRefund(ctx context.Context, g engine.TransactionGroups) ([]models.UpdateAction, error) {
	target := g.PendingRefund[0]
	request := g.InitialCancelAuthorization[0]
	charge := g.SuccessCharge[0]

	actions, err := p.synth.Canceled(target, request, engine.StatusTextRefundCanceled)
	if err != nil {
		return nil, err
	}
	if target.InteractionID == "" || charge.InteractionID == "" {
		return nil, apperr.NotFoundErr(fmt.Sprintf("refund %s has no PSP refund", target.ID))
	}

	refund, err := p.psp.GetRefund(ctx, charge.InteractionID, target.InteractionID)
	if err != nil {
		return nil, err
	}
	if refund.Status != models.RefundStatusQueued && refund.Status != models.RefundStatusPending {
		return nil, apperr.InvalidErr(apperr.CodeInvalidOperation,
			fmt.Sprintf("refund %s is %s and can no longer be canceled", refund.ID, refund.Status))
	}
	if err := p.psp.CancelRefund(ctx, charge.InteractionID, target.InteractionID); err != nil {
		return nil, err
	}
	return actions, nil
}

// capturePayment records a PSP rejection on the transaction instead of
// failing the call; only transport and server faults are returned.
func (p *Processor) capturePayment(ctx context.Context, payment *models.Payment, g engine.TransactionGroups) ([]models.UpdateAction, error) {
	tx, ok := engine.CaptureTarget(g)
	if !ok {
		telemetry.Logger.Warn("No transaction marked for capture", zap.String("payment_id", payment.ID))
		return []models.UpdateAction{}, nil
	}
	pspID := engine.CapturePaymentID(g, tx)
	if pspID == "" {
		return nil, apperr.NotFoundErr(fmt.Sprintf("no PSP payment to capture for %s", tx.ID))
	}

	capture, err := p.psp.CreateCapture(ctx, pspID, engine.BuildCaptureParams(tx))
	if err != nil {
		ae, ok := apperr.As(err)
		if !ok || ae.Kind == apperr.Internal {
			return nil, err
		}
		telemetry.Logger.Warn("Capture rejected",
			zap.String("payment_id", payment.ID),
			zap.String("transaction_id", tx.ID),
			zap.String("reason", ae.Message),
		)
		return p.synth.CaptureFailed(tx, ae.Message)
	}
	return p.synth.Captured(tx, *capture), nil
}

func (p *Processor) paymentMethods(ctx context.Context, payment *models.Payment) ([]models.UpdateAction, error) {
	params, err := engine.BuildListMethodsParams(payment)
	if err != nil {
		return nil, err
	}
	methods, err := p.psp.ListMethods(ctx, params)
	if err != nil {
		return nil, err
	}
	return p.synth.PaymentMethods(methods, p.opts)
}

func (p *Processor) applePaySession(ctx context.Context, payment *models.Payment) ([]models.UpdateAction, error) {
	params, err := engine.BuildApplePaySessionParams(payment)
	if err != nil {
		return nil, err
	}
	session, err := p.psp.RequestApplePaySession(ctx, params)
	if err != nil {
		return nil, err
	}
	return p.synth.ApplePaySession(session), nil
}
