package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/events"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// readRetryDelay paces reads while the broker keeps failing.
const readRetryDelay = time.Second

// ConsumeNotifications handles PSP notifications relayed through Kafka the
// same way as webhook deliveries. It returns when ctx is done.
func (p *Processor) ConsumeNotifications(ctx context.Context, reader MessageReader) {
	telemetry.Logger.Info("Started consuming PSP notifications", zap.String("topic", events.TopicNotifications))

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				telemetry.Logger.Info("Stopped consuming PSP notifications")
				return
			}
			telemetry.Logger.Error("Error reading message from Kafka", zap.Error(err))
			select {
			case <-ctx.Done():
				telemetry.Logger.Info("Stopped consuming PSP notifications")
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var n events.Notification
		if err := json.Unmarshal(msg.Value, &n); err != nil {
			telemetry.Logger.Error("Error unmarshaling notification", zap.Error(err))
			continue
		}

		if err := p.HandleNotification(ctx, n.ID); err != nil && !apperr.IsSkip(err) {
			telemetry.Logger.Error("Error processing notification",
				zap.String("psp_payment_id", n.ID),
				zap.Error(err),
			)
		}
	}
}
