// Package server initializes and runs the diary server: storage, services,
// the snapshot hub, and the HTTP/WebSocket API, with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/harudiary/haru/internal/logging"
	"github.com/harudiary/haru/internal/server/config"
	"github.com/harudiary/haru/internal/server/httpapi"
	"github.com/harudiary/haru/internal/server/hub"
	"github.com/harudiary/haru/internal/server/repositories/repomanager"
	"github.com/harudiary/haru/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repoManager repomanager.RepositoryManager
	httpServer  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	handler := slog.NewJSONHandler(os.Stdout, nil)
	logger := logging.NewSlogLogger(slog.New(handler))

	m, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	h := hub.New()
	us := services.NewUserService(m, cfg)
	es := services.NewEntryService(m, h, logger)

	srv, err := httpapi.NewServer(cfg.EndpointAddr, logger, us, es, h, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, repoManager: m, httpServer: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
