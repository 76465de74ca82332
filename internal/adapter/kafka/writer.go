package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/worldtrotter-service/internal/config"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces conversion events to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured event topic. Messages
// are keyed by session id so one session's events stay ordered on a partition.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: cfg.BatchFlushInterval,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes conversion events in a single
// WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, events []domain.ConversionEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(events))
	for i := range events {
		msg, err := serializeToMessage(events[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d conversion events: %w", len(msgs), err)
	}
	w.logger.Debug("conversion events written", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a ConversionEvent into a Kafka message.
func serializeToMessage(event domain.ConversionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize conversion event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(domain.EventType)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
