package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fin_metrics/pkg/config"
	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/logging"
	"fin_metrics/pkg/runner"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	entity := flag.String("entity", "", "entity id, e.g. 002508")
	inputDir := flag.String("in", "", "input directory (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	if *entity == "" {
		fmt.Fprintln(os.Stderr, "usage: metrics -entity <id> [-config file] [-in dir] [-out dir]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.Input.Dir = *inputDir
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, cleanup, err := runner.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build pipeline")
	}
	defer cleanup()

	if _, err := p.RunForEntity(ctx, ingest.NormalizeSymbol(*entity)); err != nil {
		logger.Error().Err(err).Str("entity", *entity).Msg("Pipeline failed")
		cleanup()
		if errors.Is(err, ingest.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
