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

	"github.com/jackc/pgx/v5/pgxpool"

	httpdelivery "github.com/dt-gamer/payment-instruction-service/internal/delivery/http"
	"github.com/dt-gamer/payment-instruction-service/internal/infrastructure/audit"
	"github.com/dt-gamer/payment-instruction-service/internal/infrastructure/config"
	"github.com/dt-gamer/payment-instruction-service/internal/usecase/interpret"
)

const (
	dbMaxConns            = 10
	dbMinConns            = 2
	dbMaxConnLifetime     = 30 * time.Minute
	dbMaxConnIdleTime     = 5 * time.Minute
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	var sink audit.Sink = audit.NewLogSink(logger)
	if cfg.AuditDatabaseURL != "" {
		pool, err := initDB(ctx, cfg.AuditDatabaseURL)
		if err != nil {
			logger.Error("audit database init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		sink = audit.NewPostgresSink(pool)
	}

	dispatcher := audit.NewDispatcher(sink, audit.Config{
		QueueSize: cfg.AuditQueueSize,
		Workers:   cfg.AuditWorkers,
	}, logger)
	defer dispatcher.Close()

	interpretUC := interpret.NewUseCase(interpret.SystemClock())
	handler := httpdelivery.NewHandler(interpretUC, dispatcher, logger)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
