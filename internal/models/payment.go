package models

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeAuthorization       TransactionType = "Authorization"
	TransactionTypeCancelAuthorization TransactionType = "CancelAuthorization"
	TransactionTypeCharge              TransactionType = "Charge"
	TransactionTypeRefund              TransactionType = "Refund"
	TransactionTypeChargeback          TransactionType = "Chargeback"
)

// TransactionState follows Initial -> Pending -> Success | Failure.
type TransactionState string

const (
	StateInitial TransactionState = "Initial"
	StatePending TransactionState = "Pending"
	StateSuccess TransactionState = "Success"
	StateFailure TransactionState = "Failure"
)

// Money is a platform amount in minor units.
type Money struct {
	Type           string `json:"type,omitempty"`
	CurrencyCode   string `json:"currencyCode"`
	CentAmount     int64  `json:"centAmount"`
	FractionDigits int    `json:"fractionDigits"`
}

type TypeReference struct {
	TypeID string `json:"typeId,omitempty"`
	ID     string `json:"id,omitempty"`
	Key    string `json:"key,omitempty"`
}

// CustomFields is the key-value bag attached to payments and transactions.
// Values holding sub-objects are JSON-encoded strings.
type CustomFields struct {
	Type   TypeReference  `json:"type"`
	Fields map[string]any `json:"fields"`
}

// String returns a non-empty string field.
func (c *CustomFields) String(name string) (string, bool) {
	if c == nil || c.Fields == nil {
		return "", false
	}
	s, ok := c.Fields[name].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Bool accepts both a boolean field and its string form.
func (c *CustomFields) Bool(name string) bool {
	if c == nil || c.Fields == nil {
		return false
	}
	switch v := c.Fields[name].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

func (c *CustomFields) Has(name string) bool {
	if c == nil || c.Fields == nil {
		return false
	}
	_, ok := c.Fields[name]
	return ok
}

type Transaction struct {
	ID            string           `json:"id"`
	Type          TransactionType  `json:"type"`
	State         TransactionState `json:"state"`
	Amount        Money            `json:"amount"`
	InteractionID string           `json:"interactionId,omitempty"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
	Custom        *CustomFields    `json:"custom,omitempty"`
}

type PaymentMethodInfo struct {
	PaymentInterface string            `json:"paymentInterface,omitempty"`
	Method           string            `json:"method,omitempty"`
	Name             map[string]string `json:"name,omitempty"`
}

// MethodAndIssuer splits values like "ideal,ideal_ABNANL2A" into method and issuer.
func (i PaymentMethodInfo) MethodAndIssuer() (string, string) {
	method, issuer, _ := strings.Cut(i.Method, ",")
	return strings.TrimSpace(method), strings.TrimSpace(issuer)
}

// Payment is a read-only snapshot of a platform payment.
type Payment struct {
	ID                string            `json:"id"`
	Key               string            `json:"key,omitempty"`
	Version           int64             `json:"version"`
	AmountPlanned     Money             `json:"amountPlanned"`
	PaymentMethodInfo PaymentMethodInfo `json:"paymentMethodInfo"`
	Custom            *CustomFields     `json:"custom,omitempty"`
	Transactions      []Transaction     `json:"transactions"`
}

// TransactionByID returns a copy of the matching transaction.
func (p *Payment) TransactionByID(id string) (Transaction, bool) {
	for _, tx := range p.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}
