package engine

import (
	"fmt"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/money"
)

const (
	methodCreditCard  = "creditcard"
	captureModeManual = "manual"
)

// Options carries deployment toggles into the pure logic explicitly.
type Options struct {
	CardComponentEnabled bool
	WebhookURL           string
}

func BuildCreatePaymentParams(p *models.Payment, tx models.Transaction, opts Options) (models.CreatePaymentParams, error) {
	req, err := decodeField[models.CreatePaymentRequest](p.Custom, models.FieldCreatePaymentRequest, p.ID)
	if err != nil {
		return models.CreatePaymentParams{}, err
	}

	method, issuer := p.PaymentMethodInfo.MethodAndIssuer()

	params := models.CreatePaymentParams{
		Amount:      money.FromMoney(tx.Amount, 0),
		Description: req.Description,
		RedirectURL: req.RedirectURL,
		WebhookURL:  opts.WebhookURL,
		Locale:      req.Locale,
		Method:      method,
		Issuer:      issuer,
		Metadata:    map[string]string{},
	}
	if params.Description == "" {
		params.Description = fmt.Sprintf("Payment %s", p.ID)
	}
	for k, v := range req.Metadata {
		params.Metadata[k] = v
	}
	params.Metadata[models.MetadataPaymentID] = p.ID
	params.Metadata[models.MetadataTransactionID] = tx.ID

	if IsPayLater(method) {
		params.CaptureMode = captureModeManual
	}

	if method == methodCreditCard && opts.CardComponentEnabled {
		if req.CardToken == "" {
			return models.CreatePaymentParams{}, apperr.InvalidErr(apperr.CodeInvalidInput,
				fmt.Sprintf("cardToken is required for %s when the card component is enabled", p.ID))
		}
		params.CardToken = req.CardToken
	}
	return params, nil
}

func BuildRefundParams(p *models.Payment, refund models.Transaction) models.CreateRefundParams {
	return models.CreateRefundParams{
		Amount:      money.FromMoney(refund.Amount, 0),
		Description: fmt.Sprintf("Refund %s", refund.ID),
		Metadata: map[string]string{
			models.MetadataPaymentID:     p.ID,
			models.MetadataTransactionID: refund.ID,
		},
	}
}

func BuildCaptureParams(tx models.Transaction) models.CreateCaptureParams {
	amount := money.FromMoney(tx.Amount, 0)
	description, _ := tx.Custom.String(models.FieldCaptureDescription)
	return models.CreateCaptureParams{Amount: &amount, Description: description}
}

// BuildListMethodsParams tolerates an empty request object.
func BuildListMethodsParams(p *models.Payment) (models.ListMethodsParams, error) {
	var req models.PaymentMethodsRequest
	if _, ok := p.Custom.String(models.FieldPaymentMethodsRequest); ok {
		decoded, err := decodeField[models.PaymentMethodsRequest](p.Custom, models.FieldPaymentMethodsRequest, p.ID)
		if err != nil {
			return models.ListMethodsParams{}, err
		}
		req = decoded
	}

	params := models.ListMethodsParams{
		Locale:         req.Locale,
		BillingCountry: req.BillingCountry,
		IncludeWallets: req.IncludeWallets,
		SequenceType:   req.SequenceType,
	}
	if p.AmountPlanned.CurrencyCode != "" {
		amount := money.FromMoney(p.AmountPlanned, 0)
		params.Amount = &amount
	}
	return params, nil
}

func BuildApplePaySessionParams(p *models.Payment) (models.ApplePaySessionParams, error) {
	req, err := decodeField[models.ApplePaySessionRequest](p.Custom, models.FieldApplePaySessionRequest, p.ID)
	if err != nil {
		return models.ApplePaySessionParams{}, err
	}
	return models.ApplePaySessionParams{ValidationURL: req.ValidationURL, Domain: req.Domain}, nil
}

// CaptureTarget picks the transaction a capture acts on, preferring a pending
// capture over a failed one. Failed captures are retried only while marked.
func CaptureTarget(g TransactionGroups) (models.Transaction, bool) {
	if len(g.PendingCapture) > 0 {
		return g.PendingCapture[0], true
	}
	for _, tx := range g.FailureCapture {
		if IsMarkedForCapture(tx) {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// CapturePaymentID is the PSP payment a capture is created against.
func CapturePaymentID(g TransactionGroups, tx models.Transaction) string {
	if tx.InteractionID != "" {
		return tx.InteractionID
	}
	if len(g.SuccessAuthorization) > 0 {
		return g.SuccessAuthorization[0].InteractionID
	}
	return ""
}
