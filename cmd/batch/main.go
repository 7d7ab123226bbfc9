package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fin_metrics/pkg/config"
	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/logging"
	"fin_metrics/pkg/runner"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	entitiesFlag := flag.String("entities", "", "comma separated entity ids (overrides config)")
	schedule := flag.String("schedule", "", `cron spec, e.g. "0 18 * * 1-5"; run once when empty`)
	parallelism := flag.Int("parallelism", 0, "max entities processed at once (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
	if *entitiesFlag != "" {
		cfg.Batch.Entities = strings.Split(*entitiesFlag, ",")
	}
	if *schedule != "" {
		cfg.Batch.Schedule = *schedule
	}
	if *parallelism > 0 {
		cfg.Batch.Parallelism = *parallelism
	}
	logger := logging.New(cfg.Logging)

	var entities []string
	for _, e := range cfg.Batch.Entities {
		if e = strings.TrimSpace(e); e != "" {
			entities = append(entities, ingest.NormalizeSymbol(e))
		}
	}
	if len(entities) == 0 {
		logger.Fatal().Msg("No entities configured; use -entities or batch.entities")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, cleanup, err := runner.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build pipeline")
	}
	defer cleanup()

	run := func(ctx context.Context) int {
		logger.Info().Int("entities", len(entities)).Int("parallelism", cfg.Batch.Parallelism).Msg("Batch starting")
		return runner.Summarize(logger, p.RunAll(ctx, entities))
	}

	if cfg.Batch.Schedule == "" {
		if failed := run(ctx); failed > 0 {
			cleanup()
			os.Exit(1)
		}
		return
	}

	sched := runner.NewScheduler(logger, ctx)
	if _, err := sched.Add(cfg.Batch.Schedule, func(ctx context.Context) { run(ctx) }); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.Batch.Schedule).Msg("Invalid schedule")
	}
	sched.Start()
	<-ctx.Done()
	sched.Stop()
}

