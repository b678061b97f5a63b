package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pmdelgado/kiosco/internal/catalog"
	"github.com/pmdelgado/kiosco/internal/config"
	"github.com/pmdelgado/kiosco/internal/engine"
	"github.com/pmdelgado/kiosco/internal/server"
	"github.com/pmdelgado/kiosco/internal/storage"
	"github.com/pmdelgado/kiosco/internal/storage/memory"
	"github.com/pmdelgado/kiosco/internal/storage/sqlite"
	"github.com/pmdelgado/kiosco/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var store storage.Store
	switch cfg.Store {
	case config.StoreMemory:
		store = memory.New()
		slog.Info("Using in-memory store; nothing survives a restart")
	default:
		store, err = sqlite.New(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize storage", "error", err)
			os.Exit(1)
		}
		slog.Info("Storage initialized", "database", cfg.DBPath)
	}
	defer store.Close()

	eng, err := engine.New(context.Background(), store, catalog.Default())
	if err != nil {
		slog.Error("Failed to restore session", "error", err)
		os.Exit(1)
	}

	srv := server.New(eng)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      srv.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Kiosk server starting", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
