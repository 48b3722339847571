// Package events publishes per-item sync outcomes to Kafka for downstream
// consumers. Publishing is fire-and-forget; a broker failure never affects
// the sync itself.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"olxsync/internal/logger"
)

const (
	TypeInserted   = "listing.inserted"
	TypeUpdated    = "listing.updated"
	TypeSyncFailed = "listing.sync_failed"
)

type Event struct {
	Type      string                 `json:"type"`
	SKU       string                 `json:"sku"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, log *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    "listing-events",
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		writer: writer,
		logger: log,
	}
}

func (p *Publisher) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SKU),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to publish event: %v", err)
	}
}

func (p *Publisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close event writer: %v", err)
	}
}
