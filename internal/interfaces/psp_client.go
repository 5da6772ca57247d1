package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

//go:generate mockgen -destination=mocks/mock_psp_client.go -package=mocks -source=psp_client.go PSPClient
type PSPClient interface {
	CreatePayment(ctx context.Context, params models.CreatePaymentParams) (*models.PSPPayment, error)
	// GetPayment returns the payment with its refunds embedded.
	GetPayment(ctx context.Context, id string) (*models.PSPPayment, error)
	CancelPayment(ctx context.Context, id string) (*models.PSPPayment, error)
	CreateRefund(ctx context.Context, paymentID string, params models.CreateRefundParams) (*models.PSPRefund, error)
	GetRefund(ctx context.Context, paymentID, refundID string) (*models.PSPRefund, error)
	CancelRefund(ctx context.Context, paymentID, refundID string) error
	CreateCapture(ctx context.Context, paymentID string, params models.CreateCaptureParams) (*models.PSPCapture, error)
	ListMethods(ctx context.Context, params models.ListMethodsParams) ([]models.PSPMethod, error)
	RequestApplePaySession(ctx context.Context, params models.ApplePaySessionParams) (models.ApplePaySession, error)
}
