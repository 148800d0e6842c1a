package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"recipe-live/domain/chat"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	Author        string `env:"CHAT_AUTHOR,required=true"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run joins the chat, prints what others say and sends every stdin line as a message.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := url.URL{Scheme: "ws", Host: config.ServerAddress, Path: "/ws",
		RawQuery: url.Values{"user": []string{config.Author}}.Encode()}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, address.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()
	log.Info("Connected, type a message and press enter (Ctrl+C to quit)", "server", config.ServerAddress)

	readErr := make(chan error, 1)
	go func() { readErr <- receive(conn, log) }()

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case err := <-readErr:
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("connection error: %w", err)
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			payload, err := json.Marshal(chat.NewChatMessage(chat.Message{Author: config.Author, Text: line}))
			if err != nil {
				return exitRuntime, err
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return exitRuntime, fmt.Errorf("send error: %w", err)
			}
		}
	}
}

func receive(conn *websocket.Conn, log *slog.Logger) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			log.Debug("Unreadable frame", "error", err)
			continue
		}
		switch f.Event {
		case chat.EventPreviousMessages:
			var history []chat.Message
			if err := json.Unmarshal(f.Data, &history); err == nil {
				for _, m := range history {
					printMessage(m)
				}
			}
		case chat.EventChatMessage:
			var m chat.Message
			if err := json.Unmarshal(f.Data, &m); err == nil {
				printMessage(m)
			}
		case chat.EventTyping:
			var typing chat.Typing
			if err := json.Unmarshal(f.Data, &typing); err == nil {
				log.Debug("Typing", "author", typing.Author)
			}
		}
	}
}

func printMessage(m chat.Message) {
	fmt.Printf("[%s] %s: %s\n", m.Timestamp.Local().Format(time.TimeOnly), m.Author, m.Text)
}
