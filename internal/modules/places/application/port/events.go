package port

import (
	"context"

	"placesWs/internal/modules/places/domain"
)

// SearchEventPublisher ships analytics records for completed fetches.
type SearchEventPublisher interface {
	Publish(ctx context.Context, event domain.SearchEvent) error
}

// Broadcaster pushes a message to every connected client.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// SessionRefresher re-runs the last fetch of every live session.
type SessionRefresher interface {
	RefreshSessions(ctx context.Context) int
}

// TopicHandler handles messages consumed from one broker topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
