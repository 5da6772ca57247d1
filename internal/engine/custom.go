package engine

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

var validate = validator.New()

func fieldError(field, ownerID, what string, err error) *apperr.AppError {
	return &apperr.AppError{
		Kind:    apperr.Invalid,
		Code:    apperr.CodeInvalidInput,
		Message: fmt.Sprintf("%s custom field %s on %s", what, field, ownerID),
		Err:     err,
	}
}

// decodeField parses a JSON-encoded custom field into T and validates it.
func decodeField[T any](c *models.CustomFields, field, ownerID string) (T, error) {
	var out T
	raw, ok := c.String(field)
	if !ok {
		return out, fieldError(field, ownerID, "missing", nil)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fieldError(field, ownerID, "failed to parse", err)
	}
	if err := validate.Struct(out); err != nil {
		return out, fieldError(field, ownerID, "invalid", err)
	}
	return out, nil
}

// readCancelReason treats an absent value as empty. An unparsable value is
// empty too unless strict, in which case the stored reason must survive and
// the failure is returned.
func readCancelReason(tx models.Transaction, strict bool) (models.CancelReason, error) {
	var reason models.CancelReason
	raw, ok := tx.Custom.String(models.FieldCancelReason)
	if !ok {
		return reason, nil
	}
	if err := json.Unmarshal([]byte(raw), &reason); err != nil {
		if strict {
			return models.CancelReason{}, fieldError(models.FieldCancelReason, tx.ID, "failed to parse", err)
		}
		return models.CancelReason{}, nil
	}
	return reason, nil
}

func readCaptureErrors(tx models.Transaction) []string {
	raw, ok := tx.Custom.String(models.FieldCaptureErrors)
	if !ok {
		return nil
	}
	var errs []string
	if err := json.Unmarshal([]byte(raw), &errs); err != nil {
		return nil
	}
	return errs
}
