package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

// PlatformClient reads payment snapshots from the commerce platform and hands
// it update instructions to apply. The platform enforces version checks.
//
//go:generate mockgen -destination=mocks/mock_platform_client.go -package=mocks -source=platform_client.go PlatformClient
type PlatformClient interface {
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment, actions []models.UpdateAction) (*models.Payment, error)
}
