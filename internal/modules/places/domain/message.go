package domain

import (
	"strings"
	"time"
)

// Message is the envelope exchanged with websocket clients and read from Kafka.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

const (
	SystemEntity  = "system"
	SessionEntity = "session"
	CatalogEntity = "catalog"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionState     = "state"
	ActionError     = "error"
	ActionUpdated   = "updated"

	TopicSystemConnected = SystemEntity + "." + ActionConnected
	TopicSystemPong      = SystemEntity + "." + ActionPong
	TopicSessionState    = SessionEntity + "." + ActionState
	TopicSessionError    = SessionEntity + "." + ActionError
	TopicCatalogUpdated  = CatalogEntity + "." + ActionUpdated
)

// CustomTopic joins entity and action, or returns "" when either is blank.
func CustomTopic(entity, action string) string {
	entity = strings.TrimSpace(entity)
	action = strings.TrimSpace(action)
	if entity == "" || action == "" {
		return ""
	}
	return entity + "." + action
}

// NewStateMessage wraps a session state for delivery.
func NewStateMessage(state SessionState, at time.Time) *Message {
	return &Message{
		Topic:      TopicSessionState,
		Entity:     SessionEntity,
		Action:     ActionState,
		ResourceID: state.ID,
		Metadata: map[string]string{
			"sessionId": state.ID,
			"status":    string(state.Status),
		},
		Data:      state,
		Timestamp: at.UTC(),
	}
}

// NewErrorMessage reports a command failure to a single session.
func NewErrorMessage(sessionID, action string, err error, at time.Time) *Message {
	return &Message{
		Topic:      TopicSessionError,
		Entity:     SessionEntity,
		Action:     ActionError,
		ResourceID: sessionID,
		Metadata: map[string]string{
			"sessionId": sessionID,
			"command":   action,
			"kind":      Kind(err),
		},
		Data:      map[string]string{"message": UserMessage(err)},
		Timestamp: at.UTC(),
	}
}
