package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/engine"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

const (
	pspPaymentPrefix     = "tr_"
	auditActionReconcile = "Reconcile"
)

// HandleNotification reconciles the platform payment linked to a PSP payment
// and applies the resulting instructions. Nothing is written when the
// platform already reflects the PSP state.
func (p *Processor) HandleNotification(ctx context.Context, pspPaymentID string) (err error) {
	defer func() {
		switch {
		case err == nil:
			telemetry.WebhooksTotal.WithLabelValues(telemetry.ResultProcessed).Inc()
		case apperr.IsSkip(err):
			telemetry.WebhooksTotal.WithLabelValues(telemetry.ResultSkipped).Inc()
		default:
			telemetry.WebhooksTotal.WithLabelValues(telemetry.ResultFailed).Inc()
		}
	}()

	if !strings.HasPrefix(pspPaymentID, pspPaymentPrefix) {
		return apperr.SkipErr(fmt.Sprintf("notification for %q is not a payment", pspPaymentID))
	}

	if p.guard != nil {
		acquired, gerr := p.guard.Acquire(ctx, pspPaymentID)
		if gerr != nil {
			// The guard only saves work; carry on without it.
			telemetry.Logger.Warn("In-flight guard unavailable", zap.String("psp_payment_id", pspPaymentID), zap.Error(gerr))
		} else if !acquired {
			// Redelivery picks up whatever the PSP reports once the holder is done.
			return apperr.InternalErr(fmt.Sprintf("notification for %s is already being processed", pspPaymentID))
		} else {
			defer func() {
				if rerr := p.guard.Release(ctx, pspPaymentID); rerr != nil {
					telemetry.Logger.Warn("Error releasing in-flight guard", zap.String("psp_payment_id", pspPaymentID), zap.Error(rerr))
				}
			}()
		}
	}

	pspPayment, err := p.psp.GetPayment(ctx, pspPaymentID)
	if err != nil {
		return err
	}

	paymentID := pspPayment.Metadata[models.MetadataPaymentID]
	if paymentID == "" {
		return apperr.NotFoundErr(fmt.Sprintf("PSP payment %s carries no %s", pspPaymentID, models.MetadataPaymentID))
	}

	ctx, span := telemetry.StartSpan(ctx, "connector.reconcile", paymentID)
	defer func() { telemetry.EndSpan(span, err) }()

	payment, err := p.platform.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	actions, err := engine.Reconcile(payment.Transactions, *pspPayment)
	if err != nil {
		telemetry.ReconcileTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		return err
	}

	if len(actions) == 0 {
		telemetry.ReconcileTotal.WithLabelValues(telemetry.OutcomeUnchanged).Inc()
		telemetry.Logger.Info("Payment already up to date",
			zap.String("payment_id", paymentID),
			zap.String("psp_payment_id", pspPaymentID),
			zap.String("psp_status", string(pspPayment.Status)),
		)
		p.audit(ctx, models.SourceWebhook, paymentID, auditActionReconcile, string(pspPayment.Status), nil)
		return nil
	}

	if _, err = p.platform.UpdatePayment(ctx, payment, actions); err != nil {
		telemetry.ReconcileTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		return err
	}
	telemetry.ReconcileTotal.WithLabelValues(telemetry.OutcomeUpdated).Inc()

	telemetry.Logger.Info("Payment reconciled",
		zap.String("payment_id", paymentID),
		zap.String("psp_payment_id", pspPaymentID),
		zap.String("psp_status", string(pspPayment.Status)),
		zap.Int("instructions", len(actions)),
	)
	p.audit(ctx, models.SourceWebhook, paymentID, auditActionReconcile, string(pspPayment.Status), actions)
	return nil
}

// Reconcile is the offline form of a notification: no collaborator is
// called.
func Reconcile(payment *models.Payment, pspPayment models.PSPPayment) ([]models.UpdateAction, error) {
	if payment == nil {
		return nil, apperr.InvalidErr(apperr.CodeInvalidInput, "cannot reconcile without a payment")
	}
	actions, err := engine.Reconcile(payment.Transactions, pspPayment)
	if err != nil {
		return nil, err
	}
	if actions == nil {
		actions = []models.UpdateAction{}
	}
	return actions, nil
}
