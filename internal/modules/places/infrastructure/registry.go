package infrastructure

import (
	"context"
	"strings"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

const wildcardAction = "*"

// HandlerRegistry routes consumed messages to the handler registered for their topic.
// A handler whose topic is "<entity>.*" receives every message of that entity that has no
// exact match.
type HandlerRegistry struct {
	handlers map[string]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	r.handlers[strings.ToLower(h.Topic())] = h
}

func (r *HandlerRegistry) Dispatch(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}
	if handler, ok := r.handlers[strings.ToLower(msg.Topic)]; ok {
		return handler.Handle(ctx, msg)
	}
	if topic := domain.CustomTopic(strings.ToLower(msg.Entity), wildcardAction); topic != "" {
		if handler, ok := r.handlers[topic]; ok {
			return handler.Handle(ctx, msg)
		}
	}
	return nil
}
