package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"golang.org/x/sync/errgroup"

	"fin_metrics/pkg/core/analysis"
	"fin_metrics/pkg/core/calc"
	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/core/market"
	"fin_metrics/pkg/core/synthesis"
	"fin_metrics/pkg/core/validate"
	"fin_metrics/pkg/models"
)

// Source loads the raw inputs of one entity.
// Implementations:
// - ingest.FileSource (long-format CSV exports)
// - store.ObservationRepo (Postgres)
type Source interface {
	LoadObservations(ctx context.Context, entity string) ([]models.Observation, error)
	LoadMarketCaps(ctx context.Context, entity string) ([]models.MarketCapSample, error)
}

// ValidationConfig holds the relative tolerances of the integrity checks.
type ValidationConfig struct {
	BalanceSheetTolerance float64
	CashFlowTolerance     float64
}

// EntityResult is everything computed for one entity.
type EntityResult struct {
	RunID        uuid.UUID
	Entity       string
	ComputedAt   time.Time
	LTM          *frame.Frame
	Annual       *frame.Frame
	Unmapped     map[string]int // raw label -> dropped observation count
	Restatements []synthesis.Restatement
	Warnings     []validate.Warning
}

// Table returns the frame for kind, or nil for an unknown kind.
func (r *EntityResult) Table(kind models.TableKind) *frame.Frame {
	switch kind {
	case models.TableLTM:
		return r.LTM
	case models.TableAnnual:
		return r.Annual
	}
	return nil
}

// UnmappedCount is the total number of observations dropped for unknown labels.
func (r *EntityResult) UnmappedCount() int {
	n := 0
	for _, c := range r.Unmapped {
		n += c
	}
	return n
}

// Outcome is the result of one entity in a batch. Exactly one of Result and Err is set.
type Outcome struct {
	Entity string
	Result *EntityResult
	Err    error
}

// PipelineOrchestrator manages the end-to-end data flow:
// Source -> Normalize -> Zipper -> LTM/Annual -> Market Cap -> Derived Metrics -> YoY -> Sinks
type PipelineOrchestrator struct {
	source           Source
	sinks            []Sink
	items            *lineitem.Table
	zipper           *synthesis.Zipper
	engine           *calc.Engine
	analyzer         *analysis.AnalysisEngine
	logger           arbor.ILogger
	validationConfig ValidationConfig
	parallelism      int
}

// NewPipelineOrchestrator creates an orchestrator reading from source and writing every sink.
func NewPipelineOrchestrator(source Source, items *lineitem.Table, logger arbor.ILogger, sinks ...Sink) *PipelineOrchestrator {
	if items == nil {
		items = lineitem.Default()
	}
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &PipelineOrchestrator{
		source:   source,
		sinks:    sinks,
		items:    items,
		zipper:   synthesis.NewZipper(items),
		engine:   calc.NewEngine(),
		analyzer: analysis.NewAnalysisEngine(),
		logger:   logger,
		validationConfig: ValidationConfig{
			BalanceSheetTolerance: 0.01,
			CashFlowTolerance:     0.01,
		},
		parallelism: 4,
	}
}

// SetValidationConfig updates the integrity check tolerances.
func (p *PipelineOrchestrator) SetValidationConfig(config ValidationConfig) {
	p.validationConfig = config
}

// SetParallelism bounds the number of entities RunAll processes at once.
func (p *PipelineOrchestrator) SetParallelism(n int) {
	if n > 0 {
		p.parallelism = n
	}
}

// Compute derives both tables for one entity. It performs no I/O and returns the same
// tables for the same inputs.
func (p *PipelineOrchestrator) Compute(entity string, obs []models.Observation, caps []models.MarketCapSample) (*EntityResult, error) {
	mapped, unmapped := p.items.Normalize(obs)

	wide, err := p.zipper.Stitch(mapped)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed for %s: %w", entity, err)
	}

	ltm, err := synthesis.ReconstructLTM(wide.Frame, p.items)
	if err != nil {
		return nil, fmt.Errorf("ltm reconstruction failed for %s: %w", entity, err)
	}
	annual := synthesis.Annual(wide.Frame)

	joiner := market.NewJoiner(caps)
	result := &EntityResult{
		Entity:       entity,
		Unmapped:     unmapped,
		Restatements: wide.Restatements,
	}
	for _, t := range []struct {
		kind models.TableKind
		in   *frame.Frame
		out  **frame.Frame
	}{
		{models.TableLTM, ltm, &result.LTM},
		{models.TableAnnual, annual, &result.Annual},
	} {
		f, err := p.derive(t.in, joiner, t.kind)
		if err != nil {
			return nil, fmt.Errorf("%s table for %s: %w", t.kind, entity, err)
		}
		*t.out = f
	}

	values := make([]float64, len(obs))
	for i, o := range obs {
		values[i] = o.Value
	}
	result.Warnings = append(result.Warnings, validate.CheckBenford(values)...)
	result.Warnings = append(result.Warnings, validate.CheckBalanceIdentity(result.LTM, p.validationConfig.BalanceSheetTolerance)...)
	result.Warnings = append(result.Warnings, validate.CheckCashFlowIdentity(result.LTM, p.validationConfig.CashFlowTolerance)...)
	return result, nil
}

func (p *PipelineOrchestrator) derive(f *frame.Frame, joiner *market.Joiner, kind models.TableKind) (*frame.Frame, error) {
	f, err := joiner.Attach(f)
	if err != nil {
		return nil, err
	}
	f, err = p.engine.Run(f)
	if err != nil {
		return nil, err
	}
	return p.analyzer.Annotate(f, kind)
}

// RunForEntity loads, computes and writes one entity. Nothing is written when loading,
// computing or preparing any sink fails.
func (p *PipelineOrchestrator) RunForEntity(ctx context.Context, entity string) (*EntityResult, error) {
	start := time.Now()
	log := p.logger
	log.Info().Str("entity", entity).Msg("Starting metrics pipeline")

	obs, err := p.source.LoadObservations(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("load observations for %s: %w", entity, err)
	}
	caps, err := p.source.LoadMarketCaps(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("load market caps for %s: %w", entity, err)
	}
	if len(caps) == 0 {
		log.Warn().Str("entity", entity).Msg("No market cap history; valuation multiples will be empty")
	}

	result, err := p.Compute(entity, obs, caps)
	if err != nil {
		return nil, err
	}
	result.RunID = uuid.New()
	result.ComputedAt = start.UTC()

	if n := result.UnmappedCount(); n > 0 {
		log.Info().
			Str("entity", entity).
			Int("observations", n).
			Int("labels", len(result.Unmapped)).
			Msg("Dropped observations with unmapped labels")
	}
	for label, n := range result.Unmapped {
		log.Debug().Str("entity", entity).Str("label", label).Int("count", n).Msg("Unmapped label")
	}
	for _, r := range result.Restatements {
		log.Debug().
			Str("entity", entity).
			Str("period", r.Period.Format("2006-01-02")).
			Str("item", r.Item).
			Str("old", fmt.Sprintf("%g", r.OldValue)).
			Str("new", fmt.Sprintf("%g", r.NewValue)).
			Msg("Restated value superseded")
	}
	for _, w := range result.Warnings {
		log.Warn().Str("entity", entity).Msg(w.String())
	}

	if err := Deliver(ctx, result, p.sinks...); err != nil {
		return nil, err
	}

	log.Info().
		Str("entity", entity).
		Str("run_id", result.RunID.String()).
		Int("ltm_rows", result.LTM.Len()).
		Int("annual_rows", result.Annual.Len()).
		Int("restatements", len(result.Restatements)).
		Str("elapsed", time.Since(start).String()).
		Msg("Pipeline completed")
	return result, nil
}

// RunAll processes entities concurrently. A failing entity never affects the others.
// Outcomes are returned in input order.
func (p *PipelineOrchestrator) RunAll(ctx context.Context, entities []string) []Outcome {
	outcomes := make([]Outcome, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i, entity := range entities {
		g.Go(func() error {
			outcomes[i].Entity = entity
			if err := gctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			res, err := p.RunForEntity(gctx, entity)
			if err != nil {
				p.logger.Error().Err(err).Str("entity", entity).Msg("Entity failed")
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Result = res
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
