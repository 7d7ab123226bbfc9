// Package validate provides accounting identity checks over derived period frames.
// Findings are diagnostics; they never fail a run.
package validate

import (
	"fmt"
	"math"
	"time"

	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
)

// Warning is one period that failed an identity check.
type Warning struct {
	Period time.Time
	Check  string
	Detail string
}

// String renders the warning. Entity-level warnings have a zero Period.
func (w Warning) String() string {
	if w.Period.IsZero() {
		return fmt.Sprintf("%s: %s", w.Check, w.Detail)
	}
	return fmt.Sprintf("%s %s: %s", w.Period.Format("2006-01-02"), w.Check, w.Detail)
}

// =============================================================================
// BALANCE SHEET VALIDATION
// =============================================================================

// BalanceCheck verifies Assets = Liabilities + Equity.
type BalanceCheck struct {
	TotalAssets      float64
	TotalLiabilities float64
	TotalEquity      float64
	ComputedAssets   float64 // L + E
	Difference       float64
	IsBalanced       bool
	Tolerance        float64 // relative to assets
}

// CheckBalanceEquation validates A = L + E within a tolerance relative to assets.
func CheckBalanceEquation(assets, liabilities, equity, tolerance float64) *BalanceCheck {
	computed := liabilities + equity
	diff := assets - computed

	return &BalanceCheck{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
		ComputedAssets:   computed,
		Difference:       diff,
		IsBalanced:       assets != 0 && math.Abs(diff)/math.Abs(assets) <= tolerance,
		Tolerance:        tolerance,
	}
}

// CheckBalanceIdentity reports periods whose balance sheet does not tie out. Periods
// missing any of the three totals are skipped.
func CheckBalanceIdentity(f *frame.Frame, tolerance float64) []Warning {
	var out []Warning
	for i, p := range f.Periods() {
		a, okA := f.Cell(li.TotalAssets, i).Value()
		l, okL := f.Cell(li.TotalLiabilities, i).Value()
		e, okE := f.Cell(li.TotalEquity, i).Value()
		if !okA || !okL || !okE || a == 0 {
			continue
		}
		if c := CheckBalanceEquation(a, l, e, tolerance); !c.IsBalanced {
			out = append(out, Warning{
				Period: p,
				Check:  "balance_identity",
				Detail: fmt.Sprintf("assets %.0f vs liabilities+equity %.0f (diff %.0f)", a, c.ComputedAssets, c.Difference),
			})
		}
	}
	return out
}

// =============================================================================
// CASH FLOW VALIDATION
// =============================================================================

// CashFlowCheck verifies CFO + CFI + CFF + FX = Net Change in Cash.
type CashFlowCheck struct {
	CFO           float64
	CFI           float64
	CFF           float64
	FX            float64
	ComputedTotal float64
	ReportedTotal float64
	Difference    float64
	IsBalanced    bool
	Tolerance     float64 // absolute
}

// CheckCashFlowEquation validates CFO + CFI + CFF + FX = Net Change.
func CheckCashFlowEquation(cfo, cfi, cff, fx, reportedNetChange, tolerance float64) *CashFlowCheck {
	computed := cfo + cfi + cff + fx
	diff := reportedNetChange - computed

	return &CashFlowCheck{
		CFO:           cfo,
		CFI:           cfi,
		CFF:           cff,
		FX:            fx,
		ComputedTotal: computed,
		ReportedTotal: reportedNetChange,
		Difference:    diff,
		IsBalanced:    math.Abs(diff) <= tolerance,
		Tolerance:     tolerance,
	}
}

// CheckCashFlowIdentity reports periods whose three cash-flow sections do not sum to the
// reported net change. Tolerance is relative to the larger of |net change| and |OCF|.
// Periods with any Unknown input or no reported net change are skipped.
func CheckCashFlowIdentity(f *frame.Frame, tolerance float64) []Warning {
	var out []Warning
	for i, p := range f.Periods() {
		vals := make([]float64, 0, 5)
		for _, name := range []string{li.OCF, li.ICF, li.CFF, li.FXEffect, li.NetChangeInCash} {
			v, ok := f.Cell(name, i).Value()
			if !ok {
				break
			}
			vals = append(vals, v)
		}
		if len(vals) < 5 || vals[4] == 0 {
			continue
		}
		scale := math.Max(math.Abs(vals[4]), math.Abs(vals[0]))
		c := CheckCashFlowEquation(vals[0], vals[1], vals[2], vals[3], vals[4], tolerance*scale)
		if !c.IsBalanced {
			out = append(out, Warning{
				Period: p,
				Check:  "cash_flow_identity",
				Detail: fmt.Sprintf("sections sum %.0f vs reported %.0f (diff %.0f)", c.ComputedTotal, c.ReportedTotal, c.Difference),
			})
		}
	}
	return out
}
