package models

// Custom field and type keys shared with the platform's custom type definitions.
const (
	InterfaceInteractionTypeKey = "sctm_interface_interaction_type"

	FieldCreatePaymentRequest    = "sctm_create_payment_request"
	FieldPaymentMethodsRequest   = "sctm_payment_methods_request"
	FieldPaymentMethodsResponse  = "sctm_payment_methods_response"
	FieldApplePaySessionRequest  = "sctm_apple_pay_session_request"
	FieldApplePaySessionResponse = "sctm_apple_pay_session_response"

	FieldCancelReason       = "sctm_payment_cancel_reason"
	FieldCapturePayment     = "sctm_capture_payment"
	FieldCaptureDescription = "sctm_capture_description"
	FieldCaptureErrors      = "sctm_capture_errors"
)

// CancelReason is stored JSON-encoded in FieldCancelReason.
type CancelReason struct {
	ReasonText string `json:"reasonText,omitempty"`
	StatusText string `json:"statusText,omitempty"`
}

type CreatePaymentRequest struct {
	Description    string            `json:"description"`
	RedirectURL    string            `json:"redirectUrl" validate:"required,url"`
	Locale         string            `json:"locale,omitempty"`
	BillingCountry string            `json:"billingCountry,omitempty" validate:"omitempty,len=2"`
	CardToken      string            `json:"cardToken,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type PaymentMethodsRequest struct {
	Locale         string `json:"locale,omitempty"`
	BillingCountry string `json:"billingCountry,omitempty" validate:"omitempty,len=2"`
	IncludeWallets string `json:"includeWallets,omitempty"`
	SequenceType   string `json:"sequenceType,omitempty" validate:"omitempty,oneof=oneoff first recurring"`
}

type PaymentMethod struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status string         `json:"status,omitempty"`
	Image  PSPMethodImage `json:"image"`
}

type PaymentMethodsResponse struct {
	Count                  int             `json:"count"`
	Methods                []PaymentMethod `json:"methods"`
	IsCardComponentEnabled bool            `json:"isCardComponentEnabled"`
}

type ApplePaySessionRequest struct {
	ValidationURL string `json:"validationUrl" validate:"required,url"`
	Domain        string `json:"domain" validate:"required"`
}
