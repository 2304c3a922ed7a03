package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/handlers"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/middleware"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/jwebster45206/adventure-engine/pkg/titles"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"session_backend", cfg.SessionBackend)

	registry, err := titles.Default()
	if err != nil {
		log.Error("Failed to load embedded titles", "error", err)
		os.Exit(1)
	}

	var store storage.Store
	switch cfg.SessionBackend {
	case config.BackendRedis:
		store, err = session.NewRedisStore(cfg.RedisURL, cfg.SessionIdleTimeout, log)
		if err != nil {
			log.Error("Failed to connect to session storage", "error", err)
			os.Exit(1)
		}
	case config.BackendMemory:
		store = session.NewMemoryStore(cfg.SessionIdleTimeout, log)
	default:
		log.Error("Invalid session backend specified",
			"backend", cfg.SessionBackend,
			"supported", []string{config.BackendMemory, config.BackendRedis})
		os.Exit(1)
	}

	eng := engine.New(store, registry, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(eng, log))
	mux.Handle("/v1/titles", handlers.NewTitlesHandler(eng, log))
	mux.Handle("/v1/play", handlers.NewPlayHandler(eng, log))

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing session storage", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
