// Package events publishes processed connector actions to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

const (
	TopicActions       = "connector.actions"
	TopicNotifications = "psp.notifications"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewWriter builds the producer for TopicActions, keyed by payment id.
func NewWriter(brokers string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    TopicActions,
		Balancer: &kafka.Hash{},
	}
}

// PublishAction keys the message by payment id so a payment's events stay ordered.
func (p *KafkaPublisher) PublishAction(ctx context.Context, rec models.ActionRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode action event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.PaymentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "source", Value: []byte(rec.Source)},
			{Key: "action", Value: []byte(rec.Action)},
		},
	})
}

// Notification is a PSP status-change notice relayed through Kafka instead
// of the webhook endpoint.
type Notification struct {
	ID string `json:"id"`
}

// NewNotificationReader builds the consumer for TopicNotifications.
func NewNotificationReader(brokers, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{brokers},
		Topic:    TopicNotifications,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
}
