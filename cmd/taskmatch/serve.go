package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/taskmatch/internal/config"
	logpkg "github.com/kailas-cloud/taskmatch/internal/logger"
	"github.com/kailas-cloud/taskmatch/internal/metrics"
	chiTransport "github.com/kailas-cloud/taskmatch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/taskmatch/internal/usecase/health"
	"github.com/kailas-cloud/taskmatch/internal/usecase/ranking"
	"github.com/kailas-cloud/taskmatch/internal/version"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.HTTP.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, err := logpkg.NewLogger(g.env, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, g.env, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides http.port)")
	return cmd
}

// serve is the composition root of the HTTP service. It blocks until ctx is
// cancelled, then shuts the server down gracefully.
func serve(ctx context.Context, cfg config.Config, env string, logger *zap.Logger) error {
	logger.Info("Starting taskmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("min_token_length", cfg.Ranking.MinTokenLength),
		zap.Int("max_candidates", cfg.Ranking.MaxCandidates),
		zap.Bool("auth_enabled", len(cfg.Auth.APIKeys) > 0),
	)

	metrics.RegisterRankingMetrics()

	ranker := ranking.NewInstrumentedRanker(
		ranking.New().WithMinTokenLength(cfg.Ranking.MinTokenLength),
		logger,
	)
	if err := ranker.HealthCheck(ctx); err != nil {
		return fmt.Errorf("ranker self-check: %w", err)
	}
	healthSvc := healthuc.New().With("ranker", ranker)

	server := chiTransport.NewServer(ranker, healthSvc, logger).
		WithLimits(cfg.HTTP.MaxBodyBytes, cfg.Ranking.MaxCandidates)
	router := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys: cfg.Auth.APIKeys,
		CORS: chiTransport.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
			MaxAgeSec:      cfg.CORS.MaxAgeSec,
		},
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
