package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akylbek/payment-system/psp-connector/internal/handlers"
	"github.com/akylbek/payment-system/psp-connector/internal/interfaces"
	"github.com/akylbek/payment-system/psp-connector/internal/service"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

// NewRouter wires the HTTP surface. repo may be nil when no audit database is
// configured; the action log route is then not registered.
func NewRouter(processor *service.Processor, repo interfaces.ActionLogRepository) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": telemetry.ServiceName})
	})

	r.POST("/extensions", handlers.NewExtensionHandler(processor).Handle)
	r.POST("/webhooks", handlers.NewWebhookHandler(processor).Handle)

	if repo != nil {
		r.GET("/payments/:id/actions", handlers.NewActionLogHandler(repo).ListActions)
	}

	return r
}
