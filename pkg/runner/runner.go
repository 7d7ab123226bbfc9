// Package runner wires configuration into a ready pipeline and schedules batch runs.
package runner

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"fin_metrics/pkg/config"
	"fin_metrics/pkg/core/export"
	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/core/pipeline"
	"fin_metrics/pkg/core/store"
)

// Build creates an orchestrator for cfg. The returned cleanup releases the database pool
// when one was opened.
func Build(ctx context.Context, cfg *config.Config, logger arbor.ILogger) (*pipeline.PipelineOrchestrator, func(), error) {
	cleanup := func() {}

	items := lineitem.Default()
	if cfg.LineItems != "" {
		aliases, err := lineitem.LoadExtensions(cfg.LineItems)
		if err != nil {
			return nil, cleanup, err
		}
		if items, err = items.Extend(aliases); err != nil {
			return nil, cleanup, err
		}
		logger.Info().Str("file", cfg.LineItems).Int("aliases", len(aliases)).Msg("Loaded line item aliases")
	}

	if cfg.UsesPostgres() {
		if err := store.InitDB(ctx); err != nil {
			return nil, cleanup, fmt.Errorf("init database: %w", err)
		}
		cleanup = store.Close
	}

	var source pipeline.Source
	switch cfg.Input.Source {
	case "postgres":
		source = store.NewObservationRepo(store.GetPool())
	default:
		source = ingest.NewFileSource(cfg.Input.Dir, cfg.Input.ObservationsPattern, cfg.Input.MarketCapPattern, cfg.Input.MarketCapScale)
	}

	sinks, err := Sinks(cfg, logger)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	p := pipeline.NewPipelineOrchestrator(source, items, logger, sinks...)
	p.SetParallelism(cfg.Batch.Parallelism)
	p.SetValidationConfig(pipeline.ValidationConfig{
		BalanceSheetTolerance: cfg.Validation.BalanceTolerance,
		CashFlowTolerance:     cfg.Validation.CashFlowTolerance,
	})
	return p, cleanup, nil
}

// Sinks instantiates the configured sinks in order.
func Sinks(cfg *config.Config, logger arbor.ILogger) ([]pipeline.Sink, error) {
	var sinks []pipeline.Sink
	for _, name := range cfg.Output.Sinks {
		switch name {
		case "csv":
			sinks = append(sinks, export.NewCSVSink(cfg.Output.Dir, logger))
		case "xlsx":
			sinks = append(sinks, export.NewXLSXSink(cfg.Output.Dir, logger))
		case "postgres":
			sinks = append(sinks, store.NewMetricsRepo(store.GetPool(), logger))
		default:
			return nil, fmt.Errorf("unknown sink %q", name)
		}
	}
	return sinks, nil
}

// Summarize logs one line per failed entity and returns the failure count.
func Summarize(logger arbor.ILogger, outcomes []pipeline.Outcome) int {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			logger.Error().Err(o.Err).Str("entity", o.Entity).Msg("Entity failed")
		}
	}
	logger.Info().
		Int("entities", len(outcomes)).
		Int("succeeded", len(outcomes)-failed).
		Int("failed", failed).
		Msg("Batch finished")
	return failed
}
