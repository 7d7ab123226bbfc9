package synthesis

import (
	"time"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/lineitem"
)

type yearMonth struct {
	year  int
	month time.Month
}

// Annual keeps the December rows of a wide frame.
func Annual(wide *frame.Frame) *frame.Frame {
	return wide.Filter(func(p time.Time) bool { return p.Month() == time.December })
}

// ReconstructLTM replaces every flow column's non-December cells with a trailing
// twelve month value:
//
//	LTM(Y, M) = YTD(Y, M) + YTD(Y-1, Dec) - YTD(Y-1, M)
//
// When either reference period is absent the cell is Unknown. December rows and status
// columns are passed through.
func ReconstructLTM(wide *frame.Frame, items *lineitem.Table) (*frame.Frame, error) {
	periods := wide.Periods()
	rows := make(map[yearMonth]int, len(periods))
	for i, p := range periods {
		rows[yearMonth{p.Year(), p.Month()}] = i
	}

	b := wide.Derive("ltm")
	for _, it := range items.Items() {
		if it.Kind != lineitem.Flow || !wide.Has(it.Name) {
			continue
		}
		ytd := wide.Col(it.Name)
		ltm := make(frame.Series, len(ytd))
		for i, p := range periods {
			if p.Month() == time.December {
				ltm[i] = ytd[i]
				continue
			}
			dec, okDec := rows[yearMonth{p.Year() - 1, time.December}]
			same, okSame := rows[yearMonth{p.Year() - 1, p.Month()}]
			if !okDec || !okSame {
				continue
			}
			ltm[i] = ytd[i].Add(ytd[dec]).Sub(ytd[same])
		}
		b.Override(it.Name, ltm, frame.OverrideLTM)
	}
	return b.Frame()
}
