// Package kafka publishes flood-zone generation audit events for
// downstream analytics consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/storm-buster/jal-setu/internal/config"
	"github.com/storm-buster/jal-setu/internal/domain"
)

// Publisher produces generation events to a Kafka topic.
// It implements floodzone.EventPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured events topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaEventsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishGenerated serializes and publishes one generation event. Events
// are keyed by region|scenario so a topic with log compaction retains the
// latest generation per pair.
func (p *Publisher) PublishGenerated(ctx context.Context, event domain.GenerationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serialize generation event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(fmt.Sprintf("%s|%s", event.Region, event.Scenario)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "region", Value: []byte(event.Region)},
			{Key: "scenario", Value: []byte(event.Scenario)},
			{Key: "generated_at", Value: []byte(event.GeneratedAt.Format(time.RFC3339))},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
