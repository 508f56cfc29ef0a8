package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"placesWs/internal/modules/places/domain"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidPayload = errors.New("invalid command payload")
)

// Command is a client intent sent over the websocket.
type Command struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (c Command) actionKey() string {
	return normalizeAction(c.Action)
}

// CommandHandler executes one command for a client.
type CommandHandler func(ctx context.Context, client *Client, cmd Command) error

type registeredHandler struct {
	handle CommandHandler
	async  bool
}

// CommandProcessor dispatches commands by action. Async handlers run on their own
// goroutine under a timeout; the rest run inline on the read loop.
type CommandProcessor struct {
	handlers map[string]registeredHandler
	timeout  time.Duration
}

func NewCommandProcessor(timeout time.Duration) *CommandProcessor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	processor := &CommandProcessor{
		handlers: make(map[string]registeredHandler),
		timeout:  timeout,
	}
	processor.Register("search", handleSearch, true)
	processor.Register("toggle_filter", handleToggleFilter, true)
	processor.Register("clear_filter", handleClearFilter, true)
	processor.Register("refresh", handleRefresh, true)
	processor.Register("select_restaurant", handleSelectRestaurant, false)
	processor.Register("update_region", handleUpdateRegion, false)
	processor.Register("dismiss_error", handleDismissError, false)
	processor.Register("state", handleState, false)
	processor.Register("ping", handlePing, false)
	return processor
}

func (p *CommandProcessor) Register(action string, handler CommandHandler, async bool) {
	if handler == nil {
		return
	}
	key := normalizeAction(action)
	if key == "" {
		return
	}
	p.handlers[key] = registeredHandler{handle: handler, async: async}
}

func (p *CommandProcessor) Process(client *Client, cmd Command) {
	if client == nil {
		return
	}

	action := cmd.actionKey()
	if action == "" {
		return
	}

	registered, ok := p.handlers[action]
	if !ok {
		slog.Debug("ws command unknown", slog.String("sessionId", client.sessionID), slog.String("action", action))
		client.SendDomainMessage(domain.NewErrorMessage(client.sessionID, action, ErrUnknownCommand, time.Now()))
		return
	}

	if !registered.async {
		p.run(client.ctx, client, action, registered.handle, cmd)
		return
	}

	ctx, cancel := context.WithTimeout(client.ctx, p.timeout)
	go func() {
		defer cancel()
		p.run(ctx, client, action, registered.handle, cmd)
	}()
}

func (p *CommandProcessor) run(ctx context.Context, client *Client, action string, handler CommandHandler, cmd Command) {
	if err := handler(ctx, client, cmd); err != nil {
		slog.Debug("ws command rejected", slog.String("sessionId", client.sessionID), slog.String("action", action), slog.Any("error", err))
		client.SendDomainMessage(domain.NewErrorMessage(client.sessionID, action, err, time.Now()))
	}
}

func decodePayload(cmd Command, target any) error {
	if len(cmd.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(cmd.Payload, target); err != nil {
		return ErrInvalidPayload
	}
	return nil
}

func handleSearch(ctx context.Context, client *Client, cmd Command) error {
	var payload domain.SearchCommand
	if err := decodePayload(cmd, &payload); err != nil {
		return err
	}
	client.session.SubmitQuery(ctx, payload.Query)
	return nil
}

func handleToggleFilter(ctx context.Context, client *Client, cmd Command) error {
	var payload domain.ToggleFilterCommand
	if err := decodePayload(cmd, &payload); err != nil {
		return err
	}
	if strings.TrimSpace(payload.ID) == "" && strings.TrimSpace(payload.Title) == "" {
		client.session.ClearFilter(ctx)
		return nil
	}
	filter, err := client.session.ResolveFilter(payload.ID, payload.Title)
	if err != nil {
		return err
	}
	client.session.ToggleFilter(ctx, filter)
	return nil
}

func handleClearFilter(ctx context.Context, client *Client, _ Command) error {
	client.session.ClearFilter(ctx)
	return nil
}

func handleRefresh(ctx context.Context, client *Client, _ Command) error {
	client.session.Refresh(ctx)
	return nil
}

func handleSelectRestaurant(_ context.Context, client *Client, cmd Command) error {
	var payload domain.SelectRestaurantCommand
	if err := decodePayload(cmd, &payload); err != nil {
		return err
	}
	return client.session.SelectRestaurantByID(payload.ID)
}

func handleUpdateRegion(_ context.Context, client *Client, cmd Command) error {
	var payload domain.UpdateRegionCommand
	if len(cmd.Payload) == 0 {
		return ErrInvalidPayload
	}
	if err := decodePayload(cmd, &payload); err != nil {
		return err
	}
	client.session.UpdateRegionCenter(payload.Latitude, payload.Longitude)
	return nil
}

func handleDismissError(_ context.Context, client *Client, _ Command) error {
	client.session.DismissError()
	return nil
}

func handleState(_ context.Context, client *Client, _ Command) error {
	client.SendDomainMessage(domain.NewStateMessage(client.session.State(), time.Now()))
	return nil
}

func handlePing(_ context.Context, client *Client, _ Command) error {
	client.SendDomainMessage(&domain.Message{
		Topic:     domain.TopicSystemPong,
		Entity:    domain.SystemEntity,
		Action:    domain.ActionPong,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func normalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
