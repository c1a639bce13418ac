package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// StatusChanged is the wire format of the order-status-events topic.
type StatusChanged struct {
	EventID     string    `json:"event_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	Source      string    `json:"source"`
	ChangedAt   time.Time `json:"changed_at"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return NewPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.StatusTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func NewPublisher(logger *slog.Logger, writer MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "status")),
		writer: writer,
	}
}

// PublishStatusChanged keys messages by order id so one order's events stay ordered.
func (p *kafkaPublisher) PublishStatusChanged(ctx context.Context, change entities.StatusChange) error {
	eventID := change.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	value, err := json.Marshal(StatusChanged{
		EventID:     eventID,
		OrderID:     change.OrderID,
		OrderNumber: change.OrderNumber,
		OldStatus:   string(change.OldStatus),
		NewStatus:   string(change.NewStatus),
		Source:      change.Source,
		ChangedAt:   change.ChangedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(change.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.status_changed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("status change published",
		slog.String("event_id", eventID),
		slog.String("order_id", change.OrderID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, entities.StatusChange) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
