// Package market attaches market context to period frames.
package market

import (
	"sort"
	"time"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/models"
)

// Column is the name of the joined market capitalization column.
const Column = "Market_Cap"

// Joiner answers as-of lookups over one entity's market-cap history.
type Joiner struct {
	dates  []time.Time
	values []float64
}

// NewJoiner sorts the samples by date. When several samples share a date the last
// one supplied wins.
func NewJoiner(samples []models.MarketCapSample) *Joiner {
	s := make([]models.MarketCapSample, len(samples))
	copy(s, samples)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })

	j := &Joiner{}
	for _, m := range s {
		if n := len(j.dates); n > 0 && j.dates[n-1].Equal(m.Date) {
			j.values[n-1] = m.MarketCap
			continue
		}
		j.dates = append(j.dates, m.Date)
		j.values = append(j.values, m.MarketCap)
	}
	return j
}

// AsOf returns the cap of the latest sample dated on or before t, or Unknown.
func (j *Joiner) AsOf(t time.Time) frame.Num {
	i := sort.Search(len(j.dates), func(i int) bool { return j.dates[i].After(t) })
	if i == 0 {
		return frame.Unknown
	}
	return frame.Of(j.values[i-1])
}

// Attach adds the Market_Cap column to f.
func (j *Joiner) Attach(f *frame.Frame) (*frame.Frame, error) {
	col := make(frame.Series, f.Len())
	for i, p := range f.Periods() {
		col[i] = j.AsOf(p)
	}
	return f.Derive("market").Add(Column, col).Frame()
}
