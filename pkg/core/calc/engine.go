// Package calc derives financial metrics from a wide period frame.
//
// The Engine is an ordered list of pure stages. Each stage reads the frame left by the
// previous one and adds its own columns; a column can only be replaced through a named
// override, so every value a stage reads is final.
package calc

import (
	"fmt"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/core/market"
)

// Stage is one named step of the derivation.
type Stage struct {
	Name  string
	Apply func(b *frame.Builder)
}

// Engine runs the derivation stages in order.
type Engine struct {
	stages []Stage
}

// NewEngine returns the standard derivation pipeline.
func NewEngine() *Engine {
	return &Engine{stages: []Stage{
		{"forward_fill", forwardFill},
		{"debt_and_cash", debtAndCash},
		{"income_statement", incomeStatement},
		{"depreciation", depreciation},
		{"margins", margins},
		{"balance_sheet", balanceSheet},
		{"returns", returns},
		{"efficiency", efficiency},
		{"cash_flow", cashFlow},
		{"multiples", multiples},
		{"solvency", solvency},
	}}
}

// Stages lists the stage names in execution order.
func (e *Engine) Stages() []string {
	names := make([]string, len(e.stages))
	for i, s := range e.stages {
		names[i] = s.Name
	}
	return names
}

// Run derives every metric column. Missing or zero inputs never fail; they resolve to
// Unknown cells. Errors are structural: a stage adding a column twice or a length mismatch.
func (e *Engine) Run(f *frame.Frame) (*frame.Frame, error) {
	for _, s := range e.stages {
		b := f.Derive(s.Name)
		s.Apply(b)
		next, err := b.Frame()
		if err != nil {
			return nil, fmt.Errorf("derive metrics: %w", err)
		}
		f = next
	}
	return f, nil
}

// =============================================================================
// INPUT ACCESSORS
// =============================================================================

// status reads a balance item for additive use: Unknown counts as zero.
func status(b *frame.Builder, name string) frame.Series {
	return b.Col(name).FillUnknown(0)
}

// flow reads a period item. Unknown survives so an LTM gap never reads as a small value.
func flow(b *frame.Builder, name string) frame.Series {
	return b.Col(name)
}

// derived reads a column added by an earlier stage.
func derived(b *frame.Builder, name string) frame.Series {
	return b.Col(name)
}

func marketCap(b *frame.Builder) frame.Series {
	return b.Col(market.Column)
}

// =============================================================================
// STAGE 1: FORWARD FILL
// =============================================================================

// forwardFill carries the last known non-zero balance into gaps, once, before any formula.
func forwardFill(b *frame.Builder) {
	gap := func(n frame.Num) bool { return !n.Known() || n.IsZero() }
	for _, it := range lineitem.Catalog() {
		if !lineitem.ForwardFilled(it.Name) || !b.Has(it.Name) {
			continue
		}
		b.Override(it.Name, b.Col(it.Name).ForwardFill(gap), frame.OverrideForwardFill)
	}
}
