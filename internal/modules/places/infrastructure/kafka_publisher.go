package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes search events as JSON, keyed by session so one session's
// events stay ordered within a partition.
type KafkaEventPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaEventPublisher(brokers []string, topic string) *KafkaEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Warn("kafka search events write failed", slog.String("topic", topic), slog.Int("messages", len(messages)), slog.Any("error", err))
			}
		},
	}
	return &KafkaEventPublisher{writer: writer, topic: topic}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event domain.SearchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode search event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Time:  event.CreatedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish search event to %s: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopEventPublisher is used when no broker is configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(context.Context, domain.SearchEvent) error { return nil }

func (NoopEventPublisher) Close() error { return nil }

// EventPublisher is a closable search event sink.
type EventPublisher interface {
	port.SearchEventPublisher
	Close() error
}

// NewEventPublisher returns a Kafka publisher, or a no-op one when brokers or topic are missing.
func NewEventPublisher(brokers []string, topic string) EventPublisher {
	if len(brokers) == 0 || topic == "" {
		slog.Info("search events disabled", slog.Int("brokers", len(brokers)), slog.String("topic", topic))
		return NoopEventPublisher{}
	}
	return NewKafkaEventPublisher(brokers, topic)
}

var (
	_ port.SearchEventPublisher = (*KafkaEventPublisher)(nil)
	_ port.SearchEventPublisher = NoopEventPublisher{}
)
