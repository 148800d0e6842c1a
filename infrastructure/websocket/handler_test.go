package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"recipe-live/contract"
	"recipe-live/domain/chat"
	"recipe-live/mocks"
	"recipe-live/runtime"
	"recipe-live/services"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type outboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func startServer(t *testing.T, config HandlerConfig) (*httptest.Server, *runtime.Hub) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := runtime.NewHub(log, nil, runtime.HubConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()
	server := httptest.NewServer(NewHandler(log, services.NewChatService(hub), config))
	t.Cleanup(func() {
		cancel()
		<-done
		server.Close()
	})
	return server, hub
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) outboundFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame outboundFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

// waitForConnections blocks until the hub has registered n connections.
func waitForConnections(t *testing.T, hub *runtime.Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		stats, err := hub.Stats(context.Background())
		return err == nil && stats.Connections == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_First_Frame_Is_Previous_Messages(t *testing.T) {
	req := require.New(t)
	server, _ := startServer(t, HandlerConfig{})

	conn := dial(t, server, "/")

	frame := readFrame(t, conn)
	req.Equal(chat.EventPreviousMessages, frame.Event)
	req.JSONEq(`[]`, string(frame.Data))
}

func TestHandler_Chat_Round_Trip(t *testing.T) {
	req := require.New(t)
	server, hub := startServer(t, HandlerConfig{})
	alice := dial(t, server, "/?user=alice")
	bob := dial(t, server, "/")
	readFrame(t, alice)
	readFrame(t, bob)
	waitForConnections(t, hub, 2)

	// When alice sends a message using the legacy "user" field
	writeFrame(t, alice, `{"event":"chatMessage","data":{"user":"alice","text":"hello"}}`)

	// Then bob receives it stamped by the server
	frame := readFrame(t, bob)
	req.Equal(chat.EventChatMessage, frame.Event)
	var message chat.Message
	req.NoError(json.Unmarshal(frame.Data, &message))
	req.Equal("alice", message.Author)
	req.Equal("hello", message.Text)
	req.False(message.Timestamp.IsZero())

	// And a late joiner gets it replayed
	carol := dial(t, server, "/")
	replay := readFrame(t, carol)
	req.Equal(chat.EventPreviousMessages, replay.Event)
	var history []chat.Message
	req.NoError(json.Unmarshal(replay.Data, &history))
	req.Len(history, 1)
	req.Equal("hello", history[0].Text)
}

func TestHandler_Malformed_Frames_Keep_Connection_Open(t *testing.T) {
	req := require.New(t)
	server, hub := startServer(t, HandlerConfig{})
	alice := dial(t, server, "/")
	bob := dial(t, server, "/")
	readFrame(t, alice)
	readFrame(t, bob)
	waitForConnections(t, hub, 2)

	writeFrame(t, alice, `not json`)
	writeFrame(t, alice, `{"event":"unknown","data":{}}`)
	writeFrame(t, alice, `{"event":"chatMessage","data":{"author":"alice","text":"   "}}`)
	writeFrame(t, alice, `{"event":"typing","data":{"author":"alice"}}`)

	// Then only the typing indicator reaches bob and alice is still registered
	frame := readFrame(t, bob)
	req.Equal(chat.EventTyping, frame.Event)
	req.JSONEq(`{"author":"alice"}`, string(frame.Data))
	stats, err := hub.Stats(context.Background())
	req.NoError(err)
	req.Equal(2, stats.Connections)
	req.Equal(0, stats.Messages)
}

func TestHandler_Disconnect_Unregisters(t *testing.T) {
	server, hub := startServer(t, HandlerConfig{})
	alice := dial(t, server, "/")
	readFrame(t, alice)
	waitForConnections(t, hub, 1)

	_ = alice.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = alice.Close()

	waitForConnections(t, hub, 0)
}

func TestHandler_Rejects_Unknown_Origin(t *testing.T) {
	req := require.New(t)
	server, _ := startServer(t, HandlerConfig{AllowedOrigins: []string{"https://recipes.example"}})
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})

	req.Error(err)
	req.Equal(http.StatusForbidden, resp.StatusCode)
}

func TestClient_Send_After_Close(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(log, "c1", "", nil, 1)
	req.Equal(chat.Connecting, client.State())

	req.True(client.Send(chat.NewTyping(chat.Typing{Author: "a"})))
	req.False(client.Send(chat.NewTyping(chat.Typing{Author: "a"})))

	client.Close()
	client.Close()
	req.Equal(chat.Closed, client.State())
	req.False(client.Send(chat.NewTyping(chat.Typing{Author: "a"})))
}

func TestInboundPayload_Author_Alias(t *testing.T) {
	req := require.New(t)

	req.Equal("alice", inboundPayload{Author: "alice", User: "bob"}.author())
	req.Equal("bob", inboundPayload{User: "bob"}.author())
	req.Equal("", inboundPayload{}.author())
}

func TestHandler_Failed_Join_Leaves_The_Hub(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockIChatService(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewHandler(log, chatService, HandlerConfig{}))
	t.Cleanup(server.Close)

	// Given a join that gives up after the hub may already have registered the client
	var joined string
	left := make(chan string, 1)
	chatService.EXPECT().Join(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, conn contract.Connection) error {
			joined = conn.ID()
			return context.Canceled
		})
	chatService.EXPECT().Leave(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, connID string) error {
			left <- connID
			return nil
		})

	// When a client connects
	conn := dial(t, server, "")

	// Then the connection is unregistered and closed
	select {
	case id := <-left:
		req.Equal(joined, id)
	case <-time.After(2 * time.Second):
		req.Fail("leave was not called")
	}
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := conn.ReadMessage()
	req.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}
