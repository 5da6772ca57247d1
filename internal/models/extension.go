package models

import (
	"encoding/json"
	"time"
)

// ExtensionRequest is the body the platform posts to the extension endpoint.
type ExtensionRequest struct {
	Action   string            `json:"action" binding:"required"`
	Resource ExtensionResource `json:"resource" binding:"required"`
}

type ExtensionResource struct {
	TypeID string          `json:"typeId" binding:"required"`
	ID     string          `json:"id"`
	Obj    json.RawMessage `json:"obj"`
}

// ActionRecord is one processed invocation kept in the audit log.
type ActionRecord struct {
	ID           int64           `json:"id"`
	PaymentID    string          `json:"payment_id"`
	Source       string          `json:"source"`
	Action       string          `json:"action"`
	Message      string          `json:"message,omitempty"`
	Instructions json.RawMessage `json:"instructions"`
	CreatedAt    time.Time       `json:"created_at"`
}

const (
	SourceExtension = "extension"
	SourceWebhook   = "webhook"
)
