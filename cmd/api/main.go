package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	apiconfig "fin_metrics/pkg/api/config"
	"fin_metrics/pkg/api/metrics"
	"fin_metrics/pkg/config"
	"fin_metrics/pkg/core/store"
	"fin_metrics/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.API.Addr = *addr
	}
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := store.InitDB(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Database required for the API")
	}
	defer store.Close()

	mux := http.NewServeMux()

	// Config endpoints
	configHandler := apiconfig.NewHandler(cfg)
	mux.HandleFunc("GET /api/config", configHandler.HandleConfig)

	// Metrics endpoints
	metricsHandler := metrics.NewHandler(store.NewMetricsRepo(store.GetPool(), logger), logger)
	metricsHandler.Register(mux)

	srv := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", cfg.API.Addr).Msg("API server starting")
	logger.Info().Msg("  - GET  /api/config")
	logger.Info().Msg("  - GET  /api/metrics/{entity}?table=ltm|annual")
	logger.Info().Msg("  - GET  /api/metrics/{entity}/xlsx")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("Server failed")
		store.Close()
		os.Exit(1)
	}
}
