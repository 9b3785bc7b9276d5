// Package server initializes and runs the application: it acquires the
// database handle, wires the auth service into the HTTP surface and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avoronov/authgate/internal/logging"
	"github.com/avoronov/authgate/internal/server/config"
	"github.com/avoronov/authgate/internal/server/httpapi"
	"github.com/avoronov/authgate/internal/server/storage"
	"github.com/avoronov/authgate/internal/server/users"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *storage.PostgresManager
	server  *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	sm, err := storage.NewPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(sm.Conn(), sm, cfg)
	handler := httpapi.NewHandler(us, logger)

	srv, err := httpapi.NewServer(cfg.Address, handler, []byte(cfg.SecretKey), logger)
	if err != nil {
		return nil, fmt.Errorf("server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, storage: sm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or a signal arrives, then drains
// the HTTP server and releases the database handle.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.storage.Close(); err != nil {
		app.logger.Error(shutdownCtx, "error closing storage", "error", err)
	}

	app.logger.Info(shutdownCtx, "app stopped")
}
