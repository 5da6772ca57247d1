package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

type NotificationProcessor interface {
	HandleNotification(ctx context.Context, pspPaymentID string) error
}

type WebhookHandler struct {
	processor NotificationProcessor
}

func NewWebhookHandler(processor NotificationProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// Handle accepts the PSP's form-encoded `id=<pspId>` notification. Only a
// server-side failure is answered with 5xx so the PSP retries it.
func (h *WebhookHandler) Handle(c *gin.Context) {
	id := c.PostForm("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}

	err := h.processor.HandleNotification(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "processed", "id": id})
	case apperr.IsSkip(err):
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "id": id})
	default:
		telemetry.Logger.Error("Error processing webhook",
			zap.String("psp_payment_id", id),
			zap.Error(err),
		)
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error": apperr.Body(err).Message,
			"id":    id,
		})
	}
}
