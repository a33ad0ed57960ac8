package services

import (
	"context"
	"encoding/json"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a domain event to Kafka. Publishing is
// fire-and-forget: failures are logged and never surfaced to the caller.
func publishEvent(ctx context.Context, w KafkaWriter, ev models.Event) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID, "type", ev.Type)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", ev.EventID, "type", ev.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", ev.EventID, "type", ev.Type)
	}
}
