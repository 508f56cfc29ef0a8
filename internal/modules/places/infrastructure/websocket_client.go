package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"placesWs/internal/modules/places/application/usecase"
	"placesWs/internal/modules/places/domain"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 1 << 16
)

// Client is one websocket connection and the session it drives.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	userID    string
	sessionID string
	session   *usecase.SessionController
	commands  *CommandProcessor

	ctx    context.Context
	cancel context.CancelFunc

	sendMu     sync.Mutex
	closed     bool
	closeOnce  sync.Once
	closeHooks []func(*Client)
	hookMu     sync.Mutex
}

// NewClient wires a connection to its session. Every session state change is pushed to
// the connection as a session.state message.
func NewClient(hub *Hub, conn *websocket.Conn, userID string, session *usecase.SessionController, buf int, commandTimeout time.Duration) *Client {
	if buf <= 0 {
		buf = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	client := &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, buf),
		userID:    userID,
		sessionID: session.ID(),
		session:   session,
		ctx:       ctx,
		cancel:    cancel,
	}
	client.commands = NewCommandProcessor(commandTimeout)
	session.OnChange(func(state domain.SessionState) {
		client.SendDomainMessage(domain.NewStateMessage(state, time.Now()))
	})
	return client
}

// SessionID returns the id of the session driven by this client.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Session returns the session controller driven by this client.
func (c *Client) Session() *usecase.SessionController {
	return c.session
}

// Context is cancelled when the client closes; in-flight fetches use it as their parent.
func (c *Client) Context() context.Context {
	return c.ctx
}

func (c *Client) enqueue(data []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.sendMu.Lock()
		c.closed = true
		close(c.send)
		c.sendMu.Unlock()
		if c.conn != nil {
			_ = c.conn.Close()
		}
		c.invokeCloseHooks()
	})
}

// AddCloseHook registers a callback that will be executed once when the client closes.
func (c *Client) AddCloseHook(fn func(*Client)) {
	if fn == nil {
		return
	}
	c.hookMu.Lock()
	c.closeHooks = append(c.closeHooks, fn)
	c.hookMu.Unlock()
}

func (c *Client) invokeCloseHooks() {
	c.hookMu.Lock()
	hooks := append([]func(*Client){}, c.closeHooks...)
	c.closeHooks = nil
	c.hookMu.Unlock()

	for _, hook := range hooks {
		func(h func(*Client)) {
			defer func() {
				if r := recover(); r != nil {
					slog.Warn("ws close hook panic", slog.Any("error", r))
				}
			}()
			h(c)
		}(hook)
	}
}

// SendDomainMessage queues msg for the write pump, dropping the client when its buffer is full.
func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.String("sessionId", c.sessionID), slog.Any("error", err))
		return
	}
	if !c.enqueue(data) {
		slog.Warn("websocket send buffer full", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
		if c.hub == nil {
			go c.close()
			return
		}
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.String("sessionId", c.sessionID), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				slog.Warn("websocket ping error", slog.String("sessionId", c.sessionID), slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID), slog.Any("error", err))
			}
			return
		}
		c.commands.Process(c, cmd)
	}
}
