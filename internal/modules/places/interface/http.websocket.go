package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/application/usecase"
	"placesWs/internal/modules/places/domain"
	"placesWs/internal/modules/places/infrastructure"
	"placesWs/internal/shared/auth"
)

const anonymousUser = "anonymous"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SessionOptions configures the sessions created for websocket connections.
type SessionOptions struct {
	Location       string
	Filters        []domain.Filter
	DefaultFilter  string
	Policy         usecase.StalePolicy
	Events         port.SearchEventPublisher
	SendBuffer     int
	CommandTimeout time.Duration
}

// NewSessionWebsocketHandler exposes /ws/session[/:token]. Each connection owns one
// session controller. A token is required only when validator has a key configured.
func NewSessionWebsocketHandler(
	hub *infrastructure.Hub,
	finder usecase.RestaurantFinder,
	validator *auth.JWTValidator,
	opts SessionOptions,
) echo.HandlerFunc {
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = 10 * time.Second
	}

	return func(c echo.Context) error {
		logger := c.Logger()
		peerIP := c.RealIP()

		token, source := auth.ExtractToken(c.Request(), c.Param("token"), "token")
		userID := anonymousUser
		sessionID := ""

		if validator.Enabled() {
			claims, err := validator.Validate(token)
			if err != nil {
				status := http.StatusUnauthorized
				message := "invalid token"
				if errors.Is(err, auth.ErrMissingToken) {
					status = http.StatusBadRequest
					message = "missing token"
				}
				slog.Warn("ws session rejected", slog.Int("status", status), slog.String("tokenSource", source), slog.Any("error", err))
				logger.Warnf("ws session rejected ip=%s: %v", peerIP, err)
				return echo.NewHTTPError(status, message)
			}
			userID = claims.Subject
			sessionID = claims.SessionID
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws session upgrade failed", slog.String("sessionId", sessionID), slog.Any("error", err))
			logger.Errorf("ws upgrade failed session=%s ip=%s: %v", sessionID, peerIP, err)
			return err
		}

		session := usecase.NewSessionController(finder, usecase.SessionConfig{
			ID:            sessionID,
			Location:      opts.Location,
			Filters:       opts.Filters,
			DefaultFilter: opts.DefaultFilter,
			Policy:        opts.Policy,
			Events:        opts.Events,
		})
		client := infrastructure.NewClient(hub, conn, userID, session, opts.SendBuffer, opts.CommandTimeout)
		client.AddCloseHook(func(cl *infrastructure.Client) {
			final := cl.Session().State()
			slog.Info("ws session closed", slog.String("userId", userID), slog.String("sessionId", cl.SessionID()), slog.Uint64("generation", final.Generation), slog.String("status", string(final.Status)))
		})
		hub.AttachClient(client)

		go client.WritePump()
		go client.ReadPump()

		state := session.State()
		client.SendDomainMessage(&domain.Message{
			Topic:      domain.TopicSystemConnected,
			Entity:     domain.SystemEntity,
			Action:     domain.ActionConnected,
			ResourceID: sessionID,
			Metadata: map[string]string{
				"userId":    userID,
				"sessionId": sessionID,
			},
			Data: map[string]any{
				"location":       state.Location,
				"filters":        state.Filters,
				"activeFilter":   state.ActiveFilter,
				"stalePolicy":    opts.Policy,
				"commandTimeout": opts.CommandTimeout.String(),
			},
			Timestamp: time.Now().UTC(),
		})
		slog.Info("ws session connected", slog.String("userId", userID), slog.String("sessionId", sessionID), slog.String("tokenSource", source))
		logger.Infof("ws connected user=%s session=%s ip=%s", userID, sessionID, peerIP)

		go func() {
			ctx, cancel := context.WithTimeout(client.Context(), opts.CommandTimeout)
			defer cancel()
			session.Load(ctx)
		}()
		return nil
	}
}
