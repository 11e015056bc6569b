package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/Hachi2308/coloring/internal/config"
	"github.com/Hachi2308/coloring/internal/journal"
	"github.com/Hachi2308/coloring/internal/planner"
	"github.com/Hachi2308/coloring/internal/platform/gemini"
	"github.com/Hachi2308/coloring/internal/platform/logger"
	"github.com/Hachi2308/coloring/internal/platform/postgres"
	"github.com/Hachi2308/coloring/internal/settings"
	"github.com/Hachi2308/coloring/internal/store"
	"github.com/Hachi2308/coloring/internal/task"
	"github.com/Hachi2308/coloring/migrations"
)

// App bundles the wired application components for command handlers.
type App struct {
	cfg      *config.Config
	db       *sql.DB
	images   store.ImageStore
	failed   store.FailedJobStore
	settings *settings.Store
	catalog  *settings.Catalog
	service  *planner.Service
	session  *task.Session
	journal  *journal.Journal
}

// initializeApp loads configuration, sets up logging, connects storage and
// wires the scheduling core.
func initializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app := &App{cfg: cfg}

	if cfg.Database.URL != "" {
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.images = postgres.NewPostgresImageStore(db)
		app.failed = postgres.NewPostgresFailedJobStore(db)
		log.Info("using postgres storage")
	} else {
		app.images = store.NewMemoryImageStore()
		app.failed = store.NewMemoryFailedJobStore()
		log.Warn("no database configured, history will not survive this run")
	}

	app.settings = settings.NewStore(cfg.App.SettingsDir)
	app.catalog, err = settings.LoadCatalog(app.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load style catalog: %w", err)
	}

	generator, err := gemini.NewGenerator(ctx, log, cfg.LLM, app.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	app.journal = journal.New(log)
	app.session = task.NewSession(app.journal)

	runner := task.NewRunner(task.RunnerConfig{
		Concurrency: cfg.Scheduler.Concurrency,
		Pacing:      time.Duration(cfg.Scheduler.PacingMs) * time.Millisecond,
	}, log)

	executor := task.NewExecutor(generator, app.failed, task.ExecutorConfig{
		MaxRetries:  cfg.Scheduler.MaxRetries,
		BackoffBase: time.Duration(cfg.Scheduler.BackoffBaseMs) * time.Millisecond,
	}, log, func() {
		app.journal.Append(
			"API key rejected. Set COLORING_LLM_GEMINI_API_KEY to a valid key and retry.",
			journal.LevelError,
		)
	})

	app.service = planner.NewService(runner, executor, app.images, app.failed, log)

	// Warm the session cache so retry commands see the durable queue.
	jobs, err := app.failed.GetAllFailedJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load failed-job queue: %w", err)
	}
	app.session.SetFailedJobs(jobs)

	return app, nil
}

// openDatabase connects to PostgreSQL and applies pending migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
