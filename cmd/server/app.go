package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/norsklab/norsk-api/internal/config"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/events"
	"github.com/norsklab/norsk-api/internal/platform/postgres"
	"github.com/norsklab/norsk-api/internal/service"
	"github.com/norsklab/norsk-api/internal/service/auth"
	"github.com/norsklab/norsk-api/internal/task"
)

// application holds the shared dependencies of the server and owns their
// shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	catalog         *content.Catalog
	jwtService      auth.JWTService
	progressService service.ProgressService

	eventEmitter *events.InMemoryEventEmitter
	taskQueue    *task.TaskQueue
	workerPool   *task.WorkerPool
}

// newApplication wires the application. db may be nil, in which case the
// progress service reports errors to signed-in callers.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.catalog, err = content.Load(cfg.Content.WordListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	logger.Info("content loaded", slog.Int("words", app.catalog.Len()))

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	if db != nil {
		app.progressService = service.NewProgressService(
			db,
			postgres.NewPostgresUserStore(db, logger),
			postgres.NewPostgresWordProgressStore(db, logger),
			logger,
		)
	} else {
		app.progressService = service.NewProgressService(nil, nil, nil, logger)
	}

	app.taskQueue = task.NewTaskQueue(cfg.Task.QueueSize, logger)
	app.workerPool = task.NewWorkerPool(app.taskQueue, task.WorkerPoolConfig{
		WorkerCount: cfg.Task.WorkerCount,
	}, logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.Subscribe(events.WordAttempted, task.NewAttemptEventHandler(
		app.taskQueue,
		app.progressService,
		logger,
	))

	logger.Info("application initialized")
	return app, nil
}

// Run starts the workers and serves HTTP until ctx is cancelled, then shuts
// everything down.
func (app *application) Run(ctx context.Context) error {
	app.workerPool.Start()

	serveErr := app.startHTTPServer(ctx, app.setupRouter())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.shutdownTimeout())
	defer cancel()
	app.cleanup(shutdownCtx)

	if serveErr != nil {
		return fmt.Errorf("server error: %w", serveErr)
	}
	return nil
}

func (app *application) shutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}

// cleanup stops the workers after draining queued attempts, then closes the
// database they write to.
func (app *application) cleanup(ctx context.Context) {
	app.taskQueue.Close()
	if err := app.workerPool.Stop(ctx); err != nil {
		app.logger.Warn("worker pool did not drain", slog.String("error", err.Error()))
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
