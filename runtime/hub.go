// Package runtime hosts the live chat hub.
// It orchestrates connections and fan-out without containing storage or transport logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"recipe-live/contract"
	"recipe-live/domain/chat"
	"recipe-live/errors"
	"recipe-live/observability"
	"recipe-live/projection"
	"sync"
	"time"
)

const DefaultInboxSize = 256

// HubConfig tunes the hub behavior.
type HubConfig struct {
	// EchoToSender also delivers a chat message back to the connection that sent it.
	EchoToSender bool
	// HistoryLimit caps the replayed history, 0 keeps everything.
	HistoryLimit int
	// MaxMessageLength in runes, 0 disables the check.
	MaxMessageLength int
	InboxSize        int
}

type request struct {
	name  string
	fn    func() error
	reply chan error
}

// Hub owns the chat history and the set of open connections.
// Every operation is executed by the single goroutine running Run, one at a time,
// so registration, replay, append and fan-out never interleave.
type Hub struct {
	log       *slog.Logger
	config    HubConfig
	moderator contract.IModerator
	history   *projection.History
	registry  *Registry
	inbox     chan request
	stopped   chan struct{}
	stopOnce  sync.Once
	now       func() time.Time
}

func NewHub(log *slog.Logger, moderator contract.IModerator, config HubConfig) *Hub {
	if config.InboxSize <= 0 {
		config.InboxSize = DefaultInboxSize
	}
	return &Hub{
		log:       log,
		config:    config,
		moderator: moderator,
		history:   projection.NewHistory(config.HistoryLimit),
		registry:  NewRegistry(),
		inbox:     make(chan request, config.InboxSize),
		stopped:   make(chan struct{}),
		now:       time.Now,
	}
}

// Run processes hub operations until ctx is canceled, then closes every connection.
// A panic propagates to the supervisor, which restarts Run with the state intact.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.stopped) })
			h.closeAll()
			h.log.Info("Hub stopped", "reason", ctx.Err())
			return ctx.Err()
		case req := <-h.inbox:
			h.handle(req)
		}
	}
}

func (h *Hub) handle(req request) {
	defer func() {
		if r := recover(); r != nil {
			req.reply <- errors.ErrWorkerPanic
			h.log.Error("Hub operation panicked", "operation", req.name, "panic", r)
			panic(r)
		}
	}()
	req.reply <- req.fn()
}

// submit hands fn to the hub goroutine and waits for its result.
// Once accepted, fn runs even if ctx is canceled while waiting.
func (h *Hub) submit(ctx context.Context, name string, fn func() error) error {
	req := request{name: name, fn: fn, reply: make(chan error, 1)}
	select {
	case h.inbox <- req:
	case <-h.stopped:
		return fmt.Errorf("%s: %w", name, errors.ErrHubStopped)
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
	select {
	case err := <-req.reply:
		return err
	case <-h.stopped:
		return fmt.Errorf("%s: %w", name, errors.ErrHubStopped)
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
}

// Open registers conn and replays the history to it, and to it alone, in the same step.
func (h *Hub) Open(ctx context.Context, conn contract.Connection) error {
	return h.submit(ctx, "open", func() error {
		if !h.registry.Subscribe(conn) {
			return fmt.Errorf("%w: connection %s already open", errors.ErrTransport, conn.ID())
		}
		observability.ChatConnections.Set(float64(h.registry.Len()))
		if !conn.Send(chat.NewPreviousMessages(h.history.Snapshot())) {
			h.drop(conn)
			return fmt.Errorf("%w: replay to %s failed", errors.ErrTransport, conn.ID())
		}
		h.log.Info("Connection opened", "connection", conn.ID(), "user", conn.User(),
			"connections", h.registry.Len())
		return nil
	})
}

// OnMessage validates, moderates and appends message, then fans it out.
// A rejected message is neither stored nor delivered and leaves the connection open.
func (h *Hub) OnMessage(ctx context.Context, connID string, message chat.Message) error {
	return h.submit(ctx, "message", func() error {
		if _, ok := h.registry.Get(connID); !ok {
			return fmt.Errorf("%w: connection %s is not open", errors.ErrTransport, connID)
		}
		message = message.Normalize(h.now())
		if err := message.Validate(h.config.MaxMessageLength); err != nil {
			observability.ChatMessages.WithLabelValues("rejected").Inc()
			h.log.Warn("Message rejected", "connection", connID, "error", err)
			return err
		}
		if h.moderator != nil {
			message.Text = h.moderator.Moderate(message.Author, message.Text).Content
		}
		if err := h.history.Append(message); err != nil {
			observability.ChatMessages.WithLabelValues("rejected").Inc()
			return err
		}
		observability.ChatMessages.WithLabelValues("accepted").Inc()
		observability.ChatHistorySize.Set(float64(h.history.Len()))

		except := connID
		if h.config.EchoToSender {
			except = ""
		}
		h.broadcast(except, chat.NewChatMessage(message))
		return nil
	})
}

// OnTyping relays a typing indicator to the other connections without storing it.
func (h *Hub) OnTyping(ctx context.Context, connID string, typing chat.Typing) error {
	return h.submit(ctx, "typing", func() error {
		if _, ok := h.registry.Get(connID); !ok {
			return fmt.Errorf("%w: connection %s is not open", errors.ErrTransport, connID)
		}
		if err := typing.Validate(); err != nil {
			return err
		}
		observability.ChatTyping.Inc()
		h.broadcast(connID, chat.NewTyping(typing))
		return nil
	})
}

// OnDisconnect closes and forgets the connection. Unknown ids are ignored.
func (h *Hub) OnDisconnect(ctx context.Context, connID string) error {
	return h.submit(ctx, "disconnect", func() error {
		conn, ok := h.registry.Unsubscribe(connID)
		if !ok {
			return nil
		}
		conn.Close()
		observability.ChatConnections.Set(float64(h.registry.Len()))
		h.log.Info("Connection closed", "connection", connID, "user", conn.User(),
			"connections", h.registry.Len())
		return nil
	})
}

func (h *Hub) Stats(ctx context.Context) (chat.RoomStats, error) {
	var stats chat.RoomStats
	err := h.submit(ctx, "stats", func() error {
		stats = chat.RoomStats{Connections: h.registry.Len(), Messages: h.history.Len()}
		return nil
	})
	return stats, err
}

// broadcast delivers evt to every open connection but except, in registration order.
// A connection that cannot keep up is closed; the others are unaffected.
func (h *Hub) broadcast(except string, evt chat.Event) {
	for _, conn := range h.registry.Connections() {
		if conn.ID() == except {
			continue
		}
		if !conn.Send(evt) {
			observability.ChatDeliveriesDropped.Inc()
			h.log.Warn("Connection queue full, closing", "connection", conn.ID(), "event", evt.Name)
			h.drop(conn)
		}
	}
}

func (h *Hub) drop(conn contract.Connection) {
	h.registry.Unsubscribe(conn.ID())
	conn.Close()
	observability.ChatConnections.Set(float64(h.registry.Len()))
}

func (h *Hub) closeAll() {
	conns := h.registry.Connections()
	for _, conn := range conns {
		h.drop(conn)
	}
	if len(conns) > 0 {
		h.log.Info("Closed all connections during shutdown", "connections", len(conns))
	}
}
