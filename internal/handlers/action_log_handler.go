package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/interfaces"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

const maxActionLimit = 200

type ActionLogHandler struct {
	repo interfaces.ActionLogRepository
}

func NewActionLogHandler(repo interfaces.ActionLogRepository) *ActionLogHandler {
	return &ActionLogHandler{repo: repo}
}

func (h *ActionLogHandler) ListActions(c *gin.Context) {
	paymentID := c.Param("id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxActionLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}

	records, err := h.repo.ListByPaymentID(c.Request.Context(), paymentID, limit)
	if err != nil {
		telemetry.Logger.Error("Error fetching action log",
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch action log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id": paymentID,
		"actions":    records,
	})
}
