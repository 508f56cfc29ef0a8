package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"placesWs/internal/modules/places/domain"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaEventPublisherWritesKeyedJSON(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := &KafkaEventPublisher{writer: writer, topic: "places.search-events"}
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	event := domain.SearchEvent{
		ID:          "evt-1",
		SessionID:   "session-1",
		Intent:      domain.IntentSearch,
		Query:       "nobu",
		ResultCount: 1,
		Generation:  3,
		CreatedAt:   created,
	}
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "session-1" || !msg.Time.Equal(created) {
		t.Fatalf("unexpected message envelope %+v", msg)
	}
	var decoded domain.SearchEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Query != "nobu" || decoded.Generation != 3 || decoded.Intent != domain.IntentSearch {
		t.Fatalf("unexpected payload %+v", decoded)
	}

	if err := publisher.Close(); err != nil || !writer.closed {
		t.Fatalf("close: %v closed=%v", err, writer.closed)
	}
}

func TestKafkaEventPublisherWrapsWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broker down")
	publisher := &KafkaEventPublisher{writer: &fakeWriter{err: boom}, topic: "places.search-events"}
	if err := publisher.Publish(context.Background(), domain.SearchEvent{SessionID: "s"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestNewEventPublisherWithoutBrokersIsNoop(t *testing.T) {
	t.Parallel()

	if _, ok := NewEventPublisher(nil, "places.search-events").(NoopEventPublisher); !ok {
		t.Fatal("expected no-op publisher without brokers")
	}
	if _, ok := NewEventPublisher([]string{"localhost:9092"}, "").(NoopEventPublisher); !ok {
		t.Fatal("expected no-op publisher without topic")
	}
}
