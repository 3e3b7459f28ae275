// ABOUTME: Entry point for the development catalog API
// ABOUTME: Serves an in-memory catalog with admin auth for local use and tests

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/handlers"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
	clientconfig "github.com/osamaqaseem39/strikersgear-dashboard/internal/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/logger"
)

func main() {
	if err := clientconfig.LoadDotEnv(".env"); err != nil {
		slog.Warn("Ignoring unreadable .env", "error", err)
	}

	// Initialize structured logging
	logger.Init(os.Stderr, slog.LevelInfo)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Strikers Gear development API")
	slog.Info("Token lifetime configured", "ttl", cfg.TokenTTL)
	if len(cfg.CORSAllowedOrigins) == 0 {
		slog.Info("CORS disabled, no origins allowed")
	} else {
		slog.Info("CORS configured", "origins", cfg.CORSAllowedOrigins)
	}

	h := handlers.NewHandler(cfg, store.New())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
