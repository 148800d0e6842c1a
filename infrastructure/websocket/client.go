package websocket

import (
	"context"
	"log/slog"
	"recipe-live/domain/chat"
	"recipe-live/services"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	DefaultBufferSize = 256
)

// Client is a middleman between one websocket connection and the chat service.
// It implements contract.Connection: Send only enqueues, writePump does the I/O.
type Client struct {
	id    string
	user  atomic.Value
	state atomic.Int32
	conn  *websocket.Conn
	log   *slog.Logger

	mu     sync.RWMutex
	send   chan chat.Event
	closed bool
}

func NewClient(log *slog.Logger, id, user string, conn *websocket.Conn, bufferSize int) *Client {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	c := &Client{
		id:   id,
		conn: conn,
		log:  log.With("connection", id),
		send: make(chan chat.Event, bufferSize),
	}
	c.user.Store(user)
	c.state.Store(int32(chat.Connecting))
	return c
}

func (c *Client) ID() string { return c.id }

func (c *Client) User() string {
	user, _ := c.user.Load().(string)
	return user
}

func (c *Client) State() chat.ConnectionState {
	return chat.ConnectionState(c.state.Load())
}

// Send enqueues evt without blocking. It reports false when the queue is full or closed.
func (c *Client) Send(evt chat.Event) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- evt:
		return true
	default:
		return false
	}
}

// Close is idempotent. writePump flushes what is queued, sends a close frame and releases the socket.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.state.Store(int32(chat.Closed))
	close(c.send)
}

func (c *Client) markOpen() {
	c.state.CompareAndSwap(int32(chat.Connecting), int32(chat.Open))
}

// inboundFrame is what a browser sends. Data is decoded once the event name is known.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// inboundPayload accepts "user" as an alias of "author".
type inboundPayload struct {
	Author string `json:"author"`
	User   string `json:"user"`
	Text   string `json:"text"`
}

func (p inboundPayload) author() string {
	if strings.TrimSpace(p.Author) != "" {
		return p.Author
	}
	return p.User
}

// readPump forwards inbound frames to the chat service until the socket fails.
// Malformed or rejected frames are logged and dropped, the connection stays open.
func (c *Client) readPump(ctx context.Context, chatService services.IChatService) {
	defer func() {
		if err := chatService.Leave(ctx, c.id); err != nil {
			c.log.Debug("Leave failed", "error", err)
		}
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.Error("Failed to set read deadline", "error", err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Unexpected websocket close", "error", err)
			}
			return
		}
		if err := c.dispatch(ctx, chatService, data); err != nil {
			c.log.Warn("Frame dropped", "error", err)
		}
	}
}

func (c *Client) dispatch(ctx context.Context, chatService services.IChatService, data []byte) error {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return err
	}
	var payload inboundPayload
	if len(frame.Data) > 0 {
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return err
		}
	}
	author := payload.author()
	switch frame.Event {
	case chat.EventChatMessage:
		c.rememberUser(author)
		return chatService.PostMessage(ctx, c.id, chat.Message{Author: author, Text: payload.Text})
	case chat.EventTyping:
		c.rememberUser(author)
		return chatService.Typing(ctx, c.id, chat.Typing{Author: author})
	default:
		c.log.Debug("Unknown event ignored", "event", frame.Event)
		return nil
	}
}

func (c *Client) rememberUser(author string) {
	if author = strings.TrimSpace(author); author != "" {
		c.user.Store(author)
	}
}

// writePump drains the outbound queue to the socket and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.Error("Failed to set write deadline", "error", err)
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				c.log.Error("Failed to encode event", "event", evt.Name, "error", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.log.Debug("Write failed", "error", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
