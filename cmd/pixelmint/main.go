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

	_ "github.com/lib/pq"

	"github.com/avelar/pixelmint/internal/api"
	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/config"
	"github.com/avelar/pixelmint/internal/ent"
	"github.com/avelar/pixelmint/internal/identity"
	"github.com/avelar/pixelmint/internal/service"
	"github.com/avelar/pixelmint/internal/telemetry"
	"github.com/avelar/pixelmint/internal/worker"
)

const version = "0.3.0"

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, "pixelmint", version, cfg.Environment, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	db, err := ent.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Schema.Create(ctx); err != nil {
		return err
	}

	store, err := cache.NewRedis(cfg.RedisURL)
	if err != nil {
		return err
	}

	var metadata identity.MetadataWriter = identity.NewMockMetadataWriter()
	if cfg.IdentityAPIToken != "" {
		metadata = identity.NewClient(cfg.IdentityAPIURL, cfg.IdentityAPIToken)
	} else {
		logger.Warn("IDENTITY_API_TOKEN not set, metadata mirroring disabled")
	}

	points := service.NewPointsService(db, logger)
	sessions := service.NewSessionService(db, logger)

	var dispatcher worker.Dispatcher = worker.NewMock()
	if cfg.WorkerAPIURL != "" {
		dispatcher = worker.NewClient(cfg.WorkerAPIURL, cfg.WorkerAPIKey, cfg.WorkerCallbackURL)
	} else {
		logger.Warn("WORKER_API_URL not set, using mock dispatcher")
	}
	generations := service.NewGenerationService(db, points, dispatcher, logger)

	svcs := &api.Services{
		Points:      points,
		Sessions:    sessions,
		Generations: generations,
		Cache:       store,
	}
	if cfg.StripeSecretKey != "" {
		svcs.Billing = service.NewBillingService(
			db, points, metadata,
			cfg.StripeSecretKey, cfg.StripeWebhookSecret,
			cfg.StripePriceMonthly, cfg.StripePriceYearly,
			cfg.FrontendURL, logger,
		)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, billing disabled")
	}

	interval, err := time.ParseDuration(cfg.CronInterval)
	if err != nil {
		return err
	}
	cron := service.NewCronService(db, points, metadata, nil, logger, interval)
	cron.Start()
	defer cron.Stop()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(cfg, svcs, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
