// Package server initializes and runs the garagevault server: it selects a
// storage backend, builds the identity/record/media services on top of it
// and serves the HTTP API until an OS signal asks it to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avelichko/garagevault/internal/logging"
	"github.com/avelichko/garagevault/internal/server/config"
	"github.com/avelichko/garagevault/internal/server/httpapi"
	"github.com/avelichko/garagevault/internal/server/media"
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/avelichko/garagevault/internal/server/storage"
	"github.com/avelichko/garagevault/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage storage.Manager
	server  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var m storage.Manager
	if cfg.DatabaseDSN != "" {
		pm, err := storage.NewPostgresManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		m = pm
	} else {
		m = storage.NewMemoryManager()
	}

	us := users.NewService(m.Users(), cfg)
	rs := records.NewService(m.Records())
	ms := media.NewService(cfg)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, rs, ms)

	return &App{config: cfg, logger: logger, storage: m, server: srv}, nil
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

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
}
