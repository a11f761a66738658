package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/volunteer-match/internal/adapters/http/api"
	"github.com/okian/volunteer-match/internal/adapters/repository"
	service "github.com/okian/volunteer-match/internal/app"
	"github.com/okian/volunteer-match/internal/config"
	"github.com/okian/volunteer-match/pkg/logger"
	"github.com/okian/volunteer-match/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.InitWithFormat(cfg.LogFormat, os.Stdout); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.GetRegistry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, svc, err := newHandler(ctx, cfg, log)
	if err != nil {
		return err
	}

	go startServiceMetricsUpdater(ctx, svc)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newHandler builds the store, starts the service and registers the API routes.
func newHandler(ctx context.Context, cfg *config.Config, log logger.Logger) (http.Handler, *service.Service, error) {
	store := repository.NewMemoryStore()
	svc := service.New(store,
		service.WithLogger(log.Named("service")),
		service.WithWeights(cfg.Weights()),
		service.WithMatchThreshold(cfg.MatchThreshold),
		service.WithDefaultMaxDistance(cfg.DefaultMaxDistanceMiles),
		service.WithUrgency(cfg.UrgencyWindowDays, cfg.HighUrgencyDays, cfg.FillThreshold),
		service.WithSeedFile(cfg.SeedFile),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start service: %w", err)
	}

	mux := http.NewServeMux()
	api.NewServer(svc, cfg.DefaultMatchLimit, cfg.MaxMatchLimit).Register(mux)
	return mux, svc, nil
}

// startServiceMetricsUpdater refreshes the alert and pool gauges between requests.
func startServiceMetricsUpdater(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	updateServiceMetrics(ctx, svc)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(ctx, svc)
		}
	}
}

// UrgentAlerts and MatchingStats both publish their gauges as a side effect.
func updateServiceMetrics(ctx context.Context, svc *service.Service) {
	_ = svc.UrgentAlerts(ctx)
	_ = svc.MatchingStats(ctx)
}
