package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/engine"
	"github.com/akylbek/payment-system/psp-connector/internal/interfaces"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

const resourceTypePayment = "payment"

// Processor runs extension calls and PSP notifications through the engine
// and the external collaborators. The audit log, publisher and guard are
// optional.
type Processor struct {
	platform  interfaces.PlatformClient
	psp       interfaces.PSPClient
	repo      interfaces.ActionLogRepository
	publisher interfaces.EventPublisher
	guard     interfaces.InFlightGuard
	synth     *engine.Synthesizer
	opts      engine.Options
}

type Option func(*Processor)

func WithActionLog(repo interfaces.ActionLogRepository) Option {
	return func(p *Processor) { p.repo = repo }
}

func WithPublisher(pub interfaces.EventPublisher) Option {
	return func(p *Processor) { p.publisher = pub }
}

func WithInFlightGuard(g interfaces.InFlightGuard) Option {
	return func(p *Processor) { p.guard = g }
}

func WithSynthesizer(s *engine.Synthesizer) Option {
	return func(p *Processor) { p.synth = s }
}

func NewProcessor(
	platform interfaces.PlatformClient,
	psp interfaces.PSPClient,
	opts engine.Options,
	options ...Option,
) *Processor {
	p := &Processor{
		platform: platform,
		psp:      psp,
		opts:     opts,
		synth:    engine.NewSynthesizer(nil, nil),
	}
	for _, o := range options {
		o(p)
	}
	return p
}

// HandleExtension answers a platform extension call with the update
// instructions for the payment in the request. Non-payment resources are
// skipped.
func (p *Processor) HandleExtension(ctx context.Context, req models.ExtensionRequest) ([]models.UpdateAction, error) {
	if req.Resource.TypeID != resourceTypePayment {
		return nil, apperr.SkipErr(fmt.Sprintf("resource type %q is not handled", req.Resource.TypeID))
	}

	var payment models.Payment
	if err := json.Unmarshal(req.Resource.Obj, &payment); err != nil {
		return nil, &apperr.AppError{
			Kind:    apperr.Invalid,
			Code:    apperr.CodeInvalidInput,
			Message: "resource obj is not a payment",
			Err:     err,
		}
	}
	if payment.ID == "" {
		payment.ID = req.Resource.ID
	}

	ctx, span := telemetry.StartSpan(ctx, "connector.extension", payment.ID)
	actions, determined, err := p.process(ctx, &payment)
	telemetry.EndSpan(span, err)

	p.audit(ctx, models.SourceExtension, payment.ID, determined.Action.String(), determined.Message, actions)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

func (p *Processor) process(ctx context.Context, payment *models.Payment) ([]models.UpdateAction, engine.DeterminedAction, error) {
	determined, err := engine.DetermineAction(payment)
	telemetry.ActionsTotal.WithLabelValues(determined.Action.String()).Inc()
	if err != nil {
		telemetry.Logger.Error("Invalid transaction state",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)
		return nil, determined, err
	}

	actions, err := p.dispatch(ctx, payment, determined)
	if err != nil {
		telemetry.Logger.Error("Error executing action",
			zap.String("payment_id", payment.ID),
			zap.String("action", determined.Action.String()),
			zap.Error(err),
		)
		return nil, determined, err
	}

	if determined.Action != engine.NoAction {
		telemetry.Logger.Info("Action executed",
			zap.String("payment_id", payment.ID),
			zap.String("action", determined.Action.String()),
			zap.Int("instructions", len(actions)),
		)
	}
	return actions, determined, nil
}

func (p *Processor) dispatch(ctx context.Context, payment *models.Payment, determined engine.DeterminedAction) ([]models.UpdateAction, error) {
	g := engine.Classify(payment.Transactions)

	switch determined.Action {
	case engine.NoAction:
		telemetry.Logger.Warn("No action determined",
			zap.String("payment_id", payment.ID),
			zap.String("message", determined.Message),
		)
		return []models.UpdateAction{}, nil
	case engine.CreatePayment:
		return p.createPayment(ctx, payment, g)
	case engine.CancelPayment:
		return p.cancelPayment(ctx, g)
	case engine.CreateRefund:
		return p.createRefund(ctx, payment, g)
	case engine.CancelRefund:
		return p.cancelRefund(ctx, g)
	case engine.CapturePayment:
		return p.capturePayment(ctx, payment, g)
	case engine.GetPaymentMethods:
		return p.paymentMethods(ctx, payment)
	case engine.GetApplePaySession:
		return p.applePaySession(ctx, payment)
	default:
		return nil, &apperr.AppError{
			Kind:    apperr.Internal,
			Code:    apperr.CodeGeneral,
			Message: fmt.Sprintf("no handler for action %s", determined.Action),
		}
	}
}

// audit never fails the invocation it records.
func (p *Processor) audit(ctx context.Context, source, paymentID, action, message string, actions []models.UpdateAction) {
	instructions, err := json.Marshal(actions)
	if err != nil || actions == nil {
		instructions = []byte("[]")
	}
	rec := models.ActionRecord{
		PaymentID:    paymentID,
		Source:       source,
		Action:       action,
		Message:      message,
		Instructions: instructions,
	}

	if p.repo != nil {
		if err := p.repo.RecordAction(ctx, &rec); err != nil {
			telemetry.Logger.Error("Error recording action",
				zap.String("payment_id", paymentID),
				zap.Error(err),
			)
		}
	}
	if p.publisher != nil {
		if err := p.publisher.PublishAction(ctx, rec); err != nil {
			telemetry.Logger.Error("Error publishing action event",
				zap.String("payment_id", paymentID),
				zap.Error(err),
			)
		}
	}
}
