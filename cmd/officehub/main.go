package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"officehub/internal/server"
	"officehub/internal/storage"
	"officehub/internal/storage/database"
	"officehub/internal/storage/memory"
	"officehub/internal/util"
)

func main() {
	addrFlag := flag.String("addr", util.EnvOrDefault("OFFICEHUB_ADDR", ":8080"), "HTTP listen address")
	storageFlag := flag.String("storage", util.EnvOrDefault("OFFICEHUB_STORAGE", "memory"), "Storage backend: memory, sqlite or postgres")
	dbFlag := flag.String("db", util.EnvOrDefault("OFFICEHUB_DB_PATH", "data/officehub.db"), "Path to sqlite database file")
	staticFlag := flag.String("static", util.EnvOrDefault("OFFICEHUB_STATIC_DIR", "web/dist"), "Directory with built frontend")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := openStore(*storageFlag, *dbFlag, logger)
	if err != nil {
		logger.Error("unable to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	logger.Info("storage ready", slog.String("backend", *storageFlag))

	srv := server.New(store, logger, *staticFlag)

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// openStore selects the storage backend once at startup. The postgres path
// requires DATABASE_URL; its absence is fatal.
func openStore(backend, dbPath string, logger *slog.Logger) (storage.Store, error) {
	switch backend {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return database.OpenSQLite(dbPath, logger)
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set for the postgres backend")
		}
		return database.OpenPostgres(dsn, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
