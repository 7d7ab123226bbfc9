// Package synthesis implements the "Zipper" that stitches long-format observations into
// a wide period series, and the LTM reconstruction over that series.
//
// Core Philosophy: Decoupled from Extraction.
//   - Ingest produces immutable observations (one per reported fact and revision).
//   - Synthesis (this package) is a recomputed view that merges those observations.
//
// The Zipper prioritizes:
//  1. Recency Bias: for the same (period, item), the observation with the latest
//     updated_at wins.
//  2. Determinism: ties resolve by announcement date, then source, then label, then value.
//  3. Restatement Detection: superseded observations whose value differs from the
//     winner are recorded for audit.
package synthesis

import (
	"errors"
	"sort"
	"time"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/lineitem"
)

// ErrNoObservations is returned when there is nothing to stitch after label mapping.
var ErrNoObservations = errors.New("no mapped observations")

// =============================================================================
// CORE DATA STRUCTURES
// =============================================================================

// Restatement records a superseded observation that disagreed with the winner.
type Restatement struct {
	Period       time.Time `json:"period"`
	Item         string    `json:"item"`
	OldValue     float64   `json:"old_value"`
	NewValue     float64   `json:"new_value"`
	DeltaPercent float64   `json:"delta_percent"` // 0 when the old value is 0
	OldSource    string    `json:"old_source"`
	NewSource    string    `json:"new_source"`
	OldUpdatedAt time.Time `json:"old_updated_at"`
	NewUpdatedAt time.Time `json:"new_updated_at"`
}

// WideSeries is the Zipper output: one row per period, one column per canonical item.
type WideSeries struct {
	Frame        *frame.Frame
	Restatements []Restatement
}

type cellKey struct {
	period time.Time
	item   string
}

// =============================================================================
// ZIPPER ENGINE
// =============================================================================

// Zipper builds wide series for one line-item table.
type Zipper struct {
	items *lineitem.Table
}

// NewZipper creates a Zipper over the given table.
func NewZipper(items *lineitem.Table) *Zipper {
	return &Zipper{items: items}
}

// Stitch merges mapped observations into a WideSeries. Rows are sorted ascending by
// period. Every catalog item is a column. Cells with no observation are zero, except
// forward-filled status totals which stay Unknown for the engine's forward-fill stage.
func (z *Zipper) Stitch(obs []lineitem.Mapped) (*WideSeries, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}

	groups := make(map[cellKey][]lineitem.Mapped)
	periodSet := make(map[time.Time]bool)
	for _, o := range obs {
		p := o.ReportPeriod.UTC()
		k := cellKey{period: p, item: o.Item}
		groups[k] = append(groups[k], o)
		periodSet[p] = true
	}

	periods := make([]time.Time, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	winners := make(map[cellKey]float64, len(groups))
	var restatements []Restatement
	for k, candidates := range groups {
		sort.SliceStable(candidates, func(i, j int) bool { return supersedes(candidates[i], candidates[j]) })
		win := candidates[0]
		winners[k] = win.Value
		for _, old := range candidates[1:] {
			if old.Value != win.Value {
				restatements = append(restatements, newRestatement(k, old, win))
			}
		}
	}
	sort.Slice(restatements, func(i, j int) bool {
		a, b := restatements[i], restatements[j]
		if !a.Period.Equal(b.Period) {
			return a.Period.Before(b.Period)
		}
		if a.Item != b.Item {
			return a.Item < b.Item
		}
		return a.OldUpdatedAt.After(b.OldUpdatedAt)
	})

	f, err := frame.New(periods)
	if err != nil {
		return nil, err
	}
	b := f.Derive("wide")
	for _, it := range z.items.Items() {
		col := make(frame.Series, len(periods))
		for i, p := range periods {
			if v, ok := winners[cellKey{period: p, item: it.Name}]; ok {
				col[i] = frame.Of(v)
			} else if !lineitem.ForwardFilled(it.Name) {
				col[i] = frame.Of(0)
			}
		}
		b.Add(it.Name, col)
	}
	wide, err := b.Frame()
	if err != nil {
		return nil, err
	}
	return &WideSeries{Frame: wide, Restatements: restatements}, nil
}

// supersedes reports whether a should win over b for the same (period, item).
func supersedes(a, b lineitem.Mapped) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	if !a.AnnouncementDate.Equal(b.AnnouncementDate) {
		return a.AnnouncementDate.After(b.AnnouncementDate)
	}
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.RawLabel != b.RawLabel {
		return a.RawLabel < b.RawLabel
	}
	return a.Value < b.Value
}

func newRestatement(k cellKey, old, win lineitem.Mapped) Restatement {
	delta := 0.0
	if old.Value != 0 {
		delta = (win.Value - old.Value) / old.Value * 100
	}
	return Restatement{
		Period:       k.period,
		Item:         k.item,
		OldValue:     old.Value,
		NewValue:     win.Value,
		DeltaPercent: delta,
		OldSource:    old.Source,
		NewSource:    win.Source,
		OldUpdatedAt: old.UpdatedAt,
		NewUpdatedAt: win.UpdatedAt,
	}
}
