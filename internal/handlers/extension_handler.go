package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

type ExtensionProcessor interface {
	HandleExtension(ctx context.Context, req models.ExtensionRequest) ([]models.UpdateAction, error)
}

type ExtensionHandler struct {
	processor ExtensionProcessor
}

func NewExtensionHandler(processor ExtensionProcessor) *ExtensionHandler {
	return &ExtensionHandler{processor: processor}
}

// Handle answers the platform with update actions, or with errors it shows
// to the caller that triggered the payment update.
func (h *ExtensionHandler) Handle(c *gin.Context) {
	var req models.ExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Error("Error decoding extension request", zap.Error(err))
		writeErrors(c, apperr.InvalidErr(apperr.CodeInvalidInput, "invalid request body"))
		return
	}

	actions, err := h.processor.HandleExtension(c.Request.Context(), req)
	if apperr.IsSkip(err) {
		telemetry.Logger.Debug("Extension call skipped",
			zap.String("resource_id", req.Resource.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"actions": []models.UpdateAction{}})
		return
	}
	if err != nil {
		writeErrors(c, err)
		return
	}

	if actions == nil {
		actions = []models.UpdateAction{}
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

func writeErrors(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"errors": []apperr.ErrorBody{apperr.Body(err)}})
}
