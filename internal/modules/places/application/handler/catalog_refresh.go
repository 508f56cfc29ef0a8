package handler

import (
	"context"
	"log/slog"
	"time"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

// CatalogRefreshHandler reacts to catalog change events: every client is told about the
// change and every live session re-runs its last fetch.
type CatalogRefreshHandler struct {
	Broadcaster port.Broadcaster
	Refresher   port.SessionRefresher
	Now         func() time.Time
}

func NewCatalogRefreshHandler(broadcaster port.Broadcaster, refresher port.SessionRefresher) *CatalogRefreshHandler {
	return &CatalogRefreshHandler{Broadcaster: broadcaster, Refresher: refresher, Now: time.Now}
}

func (h *CatalogRefreshHandler) Topic() string { return domain.CatalogEntity + ".*" }

func (h *CatalogRefreshHandler) Handle(ctx context.Context, msg *domain.Message) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	notice := &domain.Message{
		Topic:      domain.TopicCatalogUpdated,
		Entity:     domain.CatalogEntity,
		Action:     domain.ActionUpdated,
		ResourceID: msg.ResourceID,
		Metadata:   map[string]string{"source": msg.Action},
		Data:       msg.Data,
		Timestamp:  now().UTC(),
	}
	if h.Broadcaster != nil {
		h.Broadcaster.Broadcast(ctx, notice)
	}

	refreshed := 0
	if h.Refresher != nil {
		refreshed = h.Refresher.RefreshSessions(ctx)
	}
	slog.Info("catalog change handled",
		slog.String("topic", msg.Topic),
		slog.String("resourceId", msg.ResourceID),
		slog.Int("sessions", refreshed),
	)
	return nil
}

var _ port.TopicHandler = (*CatalogRefreshHandler)(nil)
