package models

import (
	"encoding/json"
	"time"
)

type PSPPaymentStatus string

const (
	PaymentStatusOpen       PSPPaymentStatus = "open"
	PaymentStatusPending    PSPPaymentStatus = "pending"
	PaymentStatusAuthorized PSPPaymentStatus = "authorized"
	PaymentStatusPaid       PSPPaymentStatus = "paid"
	PaymentStatusCanceled   PSPPaymentStatus = "canceled"
	PaymentStatusExpired    PSPPaymentStatus = "expired"
	PaymentStatusFailed     PSPPaymentStatus = "failed"
)

type PSPRefundStatus string

const (
	RefundStatusQueued     PSPRefundStatus = "queued"
	RefundStatusPending    PSPRefundStatus = "pending"
	RefundStatusProcessing PSPRefundStatus = "processing"
	RefundStatusRefunded   PSPRefundStatus = "refunded"
	RefundStatusFailed     PSPRefundStatus = "failed"
	RefundStatusCanceled   PSPRefundStatus = "canceled"
)

// PSPAmount is the PSP's decimal-string money representation.
type PSPAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type PSPLink struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

type PSPPayment struct {
	ID          string             `json:"id"`
	Status      PSPPaymentStatus   `json:"status"`
	Amount      PSPAmount          `json:"amount"`
	Method      string             `json:"method,omitempty"`
	Description string             `json:"description,omitempty"`
	CaptureMode string             `json:"captureMode,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	Metadata    map[string]string  `json:"metadata,omitempty"`
	Links       map[string]PSPLink `json:"_links,omitempty"`
	Embedded    struct {
		Refunds []PSPRefund `json:"refunds,omitempty"`
	} `json:"_embedded,omitempty"`
}

// CheckoutURL is where the shopper completes the payment, if any.
func (p PSPPayment) CheckoutURL() string {
	return p.Links["checkout"].Href
}

type PSPRefund struct {
	ID          string            `json:"id"`
	PaymentID   string            `json:"paymentId,omitempty"`
	Status      PSPRefundStatus   `json:"status"`
	Amount      PSPAmount         `json:"amount"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type PSPCapture struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"paymentId,omitempty"`
	Status    string    `json:"status,omitempty"`
	Amount    PSPAmount `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type PSPMethodImage struct {
	Size1x string `json:"size1x,omitempty"`
	Size2x string `json:"size2x,omitempty"`
	SVG    string `json:"svg,omitempty"`
}

type PSPMethod struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Status      string         `json:"status,omitempty"`
	Image       PSPMethodImage `json:"image"`
}

type CreatePaymentParams struct {
	Amount      PSPAmount         `json:"amount"`
	Description string            `json:"description"`
	RedirectURL string            `json:"redirectUrl"`
	WebhookURL  string            `json:"webhookUrl,omitempty"`
	Locale      string            `json:"locale,omitempty"`
	Method      string            `json:"method,omitempty"`
	Issuer      string            `json:"issuer,omitempty"`
	CardToken   string            `json:"cardToken,omitempty"`
	CaptureMode string            `json:"captureMode,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type CreateRefundParams struct {
	Amount      PSPAmount         `json:"amount"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type CreateCaptureParams struct {
	Amount      *PSPAmount `json:"amount,omitempty"`
	Description string     `json:"description,omitempty"`
}

type ListMethodsParams struct {
	Locale         string     `json:"locale,omitempty"`
	BillingCountry string     `json:"billingCountry,omitempty"`
	IncludeWallets string     `json:"includeWallets,omitempty"`
	SequenceType   string     `json:"sequenceType,omitempty"`
	Amount         *PSPAmount `json:"amount,omitempty"`
}

type ApplePaySessionParams struct {
	ValidationURL string `json:"validationUrl"`
	Domain        string `json:"domain"`
}

// ApplePaySession is passed through verbatim to the storefront.
type ApplePaySession = json.RawMessage

// Metadata keys written on PSP objects to link them back to the platform.
const (
	MetadataPaymentID     = "ctPaymentId"
	MetadataTransactionID = "ctTransactionId"
)
