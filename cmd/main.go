package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"recipe-live/infrastructure/rest"
	"recipe-live/infrastructure/storage"
	"recipe-live/infrastructure/websocket"
	"recipe-live/moderation"
	"recipe-live/runtime"
	"recipe-live/runtime/workers"
	"recipe-live/services"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the process lifecycle, so that deferred cleanups
// (Badger above all) always execute before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	store := storage.NewStore(db, log, config.StoreRetries)

	// 3. Moderation
	dictionaries, err := moderation.NewEmbeddedLoader().LoadAll(moderation.EmbeddedPath)
	if err != nil {
		return fmt.Errorf("moderation dictionaries: %w", err)
	}
	moderator, err := moderation.NewModerator(dictionaries.Words, config.censoredChar(), log)
	if err != nil {
		return fmt.Errorf("moderator: %w", err)
	}

	// 4. Services
	interactionService := services.NewInteractionService(log,
		storage.NewRatingRepository(store),
		storage.NewFavoriteRepository(store),
		storage.NewCommentRepository(store),
		moderator, config.MaxCommentLength)

	hub := runtime.NewHub(log, moderator, runtime.HubConfig{
		EchoToSender:     config.EchoToSender,
		HistoryLimit:     config.HistoryLimit,
		MaxMessageLength: config.MaxMessageLength,
		InboxSize:        config.HubBufferSize,
	})
	chatService := services.NewChatService(hub)

	// 5. Context, Signals & Supervision
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sampler workers.ProcessSampler
	if self, err := workers.NewSelfSampler(); err != nil {
		log.Warn("Process sampling unavailable", "error", err)
	} else {
		sampler = self
	}

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		hub,
		workers.NewStoreGCWorker(log, store, config.StoreGCInterval),
		workers.NewStatsReporterWorker(log, hub, sampler, config.StatsInterval),
	)
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	// 6. HTTP Server Setup
	wsHandler := websocket.NewHandler(log, chatService, websocket.HandlerConfig{
		BufferSize:     config.ConnectionBufferSize,
		AllowedOrigins: config.allowedOrigins(),
	})
	router := rest.NewRouter(log, rest.RouterConfig{
		CORSOrigins:        config.allowedOrigins(),
		RateLimitPerMinute: config.RateLimitPerMinute,
	}, rest.NewHandler(log, interactionService, chatService), wsHandler)

	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		sup.Stop()
		<-supDone
		return err
	}

	// 8. Final Cleanup: stop accepting requests, then close the live connections
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
