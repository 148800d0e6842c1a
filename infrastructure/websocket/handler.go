// Package websocket exposes the live chat over websocket connections.
package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"recipe-live/services"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type HandlerConfig struct {
	BufferSize int
	// AllowedOrigins lists the browser origins accepted at upgrade, "*" accepts any.
	AllowedOrigins []string
}

// Handler upgrades GET /ws and runs one Client per connection.
type Handler struct {
	log         *slog.Logger
	chatService services.IChatService
	config      HandlerConfig
	upgrader    websocket.Upgrader
}

func NewHandler(log *slog.Logger, chatService services.IChatService, config HandlerConfig) *Handler {
	h := &Handler{log: log, chatService: chatService, config: config}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
	return h
}

// checkOrigin lets non-browser clients through, they send no Origin header.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.config.AllowedOrigins) == 0 {
		return true
	}
	if slices.Contains(h.config.AllowedOrigins, "*") || slices.Contains(h.config.AllowedOrigins, origin) {
		return true
	}
	h.log.Warn("Websocket rejected from unauthorized origin", "origin", origin)
	return false
}

// ServeHTTP blocks for the lifetime of the connection.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(h.log, uuid.NewString(), r.URL.Query().Get("user"), conn, h.config.BufferSize)
	go client.writePump()

	ctx := r.Context()
	if err := h.chatService.Join(ctx, client); err != nil {
		h.log.Warn("Join failed", "connection", client.ID(), "error", err)
		// The hub may have registered the client before ctx ended.
		leaveCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		if err := h.chatService.Leave(leaveCtx, client.ID()); err != nil {
			h.log.Debug("Leave failed", "connection", client.ID(), "error", err)
		}
		client.Close()
		return
	}
	client.markOpen()
	client.readPump(ctx, h.chatService)
}
