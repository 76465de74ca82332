package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/worldtrotter-service/internal/config"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	f, c := 212.0, 100.0
	event := domain.ConversionEvent{
		SessionID:  "sess-1",
		Locale:     "en-US",
		Accepted:   true,
		Text:       "212",
		Fahrenheit: &f,
		Celsius:    &c,
		Display:    "100",
		OccurredAt: now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("sess-1"), msg.Key)
	assert.Equal(t, now, msg.Time)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("conversion"), msg.Headers[0].Value)
	assert.Equal(t, "occurred_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)

	var decoded domain.ConversionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestSerializeToMessage_AbsentValues(t *testing.T) {
	event := domain.ConversionEvent{SessionID: "sess-2", Display: domain.Placeholder}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Contains(t, string(msg.Value), `"fahrenheit":null`)
	assert.Contains(t, string(msg.Value), `"celsius":null`)
	assert.Contains(t, string(msg.Value), `"display":"---"`)
}

func TestNewWriter_UsesConfig(t *testing.T) {
	cfg := &config.Config{
		KafkaBrokers:       []string{"broker1:9092", "broker2:9092"},
		KafkaTopic:         "conversion-events",
		BatchFlushInterval: 250 * time.Millisecond,
	}

	w := NewWriter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, "conversion-events", w.writer.Topic)
	assert.Equal(t, kafkago.RequireAll, w.writer.RequiredAcks)
	assert.IsType(t, &kafkago.Hash{}, w.writer.Balancer)
	assert.Equal(t, 250*time.Millisecond, w.writer.BatchTimeout)
}

func TestLoadBatch_EmptyIsNoop(t *testing.T) {
	w := NewWriter(&config.Config{KafkaBrokers: []string{"localhost:1"}, KafkaTopic: "t"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.LoadBatch(context.Background(), nil))
}
