package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

// Hub tracks the connected session clients.
type Hub struct {
	clients        map[string]*Client
	mu             sync.RWMutex
	refreshTimeout time.Duration
}

func NewHub(refreshTimeout time.Duration) *Hub {
	if refreshTimeout <= 0 {
		refreshTimeout = 10 * time.Second
	}
	return &Hub{clients: make(map[string]*Client), refreshTimeout: refreshTimeout}
}

// Count returns the number of attached clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// AttachClient registers c, replacing any previous client with the same session id.
func (h *Hub) AttachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.clients[c.sessionID]; ok && existing != c {
		h.detachLocked(existing)
	}
	h.clients[c.sessionID] = c
	slog.Info("ws client attached", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	if current, ok := h.clients[c.sessionID]; ok && current == c {
		delete(h.clients, c.sessionID)
	}
	c.close()
	slog.Info("ws client detached", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// Broadcast sends msg to every client. Clients whose buffer is full are dropped.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}
	for _, c := range h.snapshot() {
		if !c.enqueue(data) {
			go h.detachClient(c)
		}
	}
}

// RefreshSessions re-runs the last fetch of every attached session in the background
// and returns how many were started.
func (h *Hub) RefreshSessions(ctx context.Context) int {
	clients := h.snapshot()
	for _, c := range clients {
		go func(client *Client) {
			refreshCtx, cancel := context.WithTimeout(client.ctx, h.refreshTimeout)
			defer cancel()
			stop := context.AfterFunc(ctx, cancel)
			defer stop()
			client.session.Refresh(refreshCtx)
		}(c)
	}
	slog.Info("ws sessions refresh started", slog.Int("sessions", len(clients)))
	return len(clients)
}

// CloseAll detaches every client and closes its connection.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		h.detachLocked(c)
	}
}

var (
	_ port.Broadcaster      = (*Hub)(nil)
	_ port.SessionRefresher = (*Hub)(nil)
)
