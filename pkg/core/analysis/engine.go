// Package analysis annotates derived metric tables with growth rates.
package analysis

import (
	"fmt"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/models"
)

// AnalysisEngine appends year-over-year growth columns.
type AnalysisEngine struct{}

// NewAnalysisEngine creates a new instance of the engine.
func NewAnalysisEngine() *AnalysisEngine {
	return &AnalysisEngine{}
}

// Lag is the number of rows back that holds the comparable prior-year period:
// four quarters for LTM rows, one year for annual rows.
func Lag(kind models.TableKind) int {
	if kind == models.TableLTM {
		return 4
	}
	return 1
}

// Annotate adds one growth column per headline metric, computed as cur/prior - 1
// against the row Lag(kind) positions earlier. The comparison is positional: rows
// without a comparison row, with an Unknown value on either side, or with a zero
// prior value are Unknown.
func (e *AnalysisEngine) Annotate(f *frame.Frame, kind models.TableKind) (*frame.Frame, error) {
	lag := Lag(kind)
	b := f.Derive("yoy")
	for _, h := range Headlines {
		b.Add(h.Column, f.Col(h.Source).PctChange(lag))
	}
	out, err := b.Frame()
	if err != nil {
		return nil, fmt.Errorf("annotate %s growth: %w", kind, err)
	}
	return out, nil
}
