package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

// ActionLogRepository defines the contract for the audit log of processed invocations
//
//go:generate mockgen -destination=mocks/mock_action_log_repository.go -package=mocks -source=action_log_repository.go ActionLogRepository
type ActionLogRepository interface {
	RecordAction(ctx context.Context, rec *models.ActionRecord) error
	ListByPaymentID(ctx context.Context, paymentID string, limit int) ([]models.ActionRecord, error)
}
