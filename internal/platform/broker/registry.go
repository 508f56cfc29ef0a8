package broker

import (
	"context"
	"log/slog"
	"sync"

	"placesWs/internal/modules/places/domain"
	"placesWs/internal/modules/places/infrastructure"
)

// StartKafkaConsumers runs one consumer per topic. The returned WaitGroup completes once
// every consumer has stopped after ctx is cancelled.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) *sync.WaitGroup {
	var wg sync.WaitGroup
	if len(brokers) == 0 {
		slog.Info("kafka consumers disabled: no brokers configured")
		return &wg
	}
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		wg.Add(1)
		go func(tp string) {
			defer wg.Done()
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			err := consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
			slog.Info("kafka consumer stopped", slog.String("topic", tp), slog.Any("reason", err))
		}(topic)
	}
	return &wg
}
