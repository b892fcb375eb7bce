// Package chroniclesservice wires the chronicles HTTP service together and
// runs it until shutdown.
package chroniclesservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/celestial/celestial-chronicles/internal/aggregator"
	"github.com/celestial/celestial-chronicles/internal/api"
	"github.com/celestial/celestial-chronicles/internal/config"
	"github.com/celestial/celestial-chronicles/internal/health"
	"github.com/celestial/celestial-chronicles/internal/nasa"
	"github.com/celestial/celestial-chronicles/internal/platform/logger"
	"github.com/celestial/celestial-chronicles/internal/progress"
	"github.com/celestial/celestial-chronicles/internal/progress/store"
)

// Run starts the chronicles service HTTP server and blocks until shutdown
// or error.
func Run() error {
	log := logger.New("chronicles-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Str("images_base_url", cfg.ImagesBaseURL).
		Msg("Chronicles service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// External source, aggregation service, progress tracker
	nasaClient := nasa.NewClient(cfg.NASAAPIKey,
		nasa.WithAPIBaseURL(cfg.APIBaseURL),
		nasa.WithImagesBaseURL(cfg.ImagesBaseURL),
		nasa.WithTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
	)
	svc := aggregator.NewService(nasaClient, log,
		aggregator.WithCacheTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second),
		aggregator.WithFloorYear(cfg.APODFloorYear),
		aggregator.WithSearchPageSize(cfg.SearchPageSize),
	)

	st, err := store.Open(cfg.StoreDriver, cfg.StorePath())
	if err != nil {
		log.Error().Err(err).Msg("Progress store unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	tracker := progress.New(st, log)
	if err := tracker.Load(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to load progress")
		return err
	}

	// Health checkers: informational only; degraded upstreams never block
	// startup because every read operation degrades gracefully.
	startHealthCheckers(ctx, cfg, log, nasaClient, st)

	// Router and server
	router := api.NewRouter(svc, nasaClient, tracker)
	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, nasaClient *nasa.Client, st store.Store) {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	nasaChecker := health.NewComponentChecker("nasa-api", nasaClient, log, probeTimeout)
	go nasaChecker.Start(ctx, interval)

	storeChecker := health.NewComponentChecker(fmt.Sprintf("progress-store-%s", cfg.StoreDriver), st, log, probeTimeout)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, nasaChecker, storeChecker)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	api.BindComponentHealth(svcHealth.Components)
}
