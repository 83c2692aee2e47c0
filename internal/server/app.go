// Package server wires configuration, metadata repositories, blob storage
// and the HTTP API into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/server/api"
	"github.com/dmitrijs2005/filedesk/internal/server/config"
	"github.com/dmitrijs2005/filedesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filedesk/internal/server/services"
	"github.com/dmitrijs2005/filedesk/internal/server/storage"
)

// newPostgresManager is a seam for tests.
var newPostgresManager = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	return repomanager.NewPostgresRepositoryManager(ctx, dsn)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	fileService *services.FileService
}

// NewApp builds the application. An empty DatabaseDSN keeps file metadata
// in memory.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, "json")

	var repos repomanager.RepositoryManager
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, metadata is kept in memory")
		repos = repomanager.NewInMemoryRepositoryManager()
	} else {
		rm, err := newPostgresManager(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = rm
	}

	blobs, err := storage.New(ctx, c)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	fs := services.NewFileService(repos, blobs, logger, c.MaxUploadSize, c.AllowedTypes)

	return &App{config: c, logger: logger, repos: repos, fileService: fs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := api.NewServer(app.config.Addr, app.fileService, app.logger, app.config.MaxUploadSize)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or the
// HTTP server fails, then closes the repositories.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "failed to close repositories", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
