// Package server initializes and runs the SIGA backend: it opens the
// Postgres store, applies migrations, wires the services and starts the
// HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/logging"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/config"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/httpapi"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs := services.NewS3BlobStore(cfg)

	srv := httpapi.NewServer(
		cfg.EndpointAddrHTTP,
		cfg.ShutdownTimeout,
		logger,
		db,
		services.NewAuthService(db, rm),
		services.NewStudentService(db, rm),
		services.NewClassService(db, rm),
		services.NewPaymentService(db, rm),
		services.NewAttendanceService(db, rm),
		services.NewReceiptService(db, rm, blobs),
	)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
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
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
