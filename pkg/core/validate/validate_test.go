package validate

import (
	"testing"
	"time"

	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
)

func build(t *testing.T, cols map[string]frame.Series) *frame.Frame {
	t.Helper()
	f, err := frame.New([]time.Time{
		time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	b := f.Derive("seed")
	for name, s := range cols {
		b.Add(name, s)
	}
	f, err = b.Frame()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// =============================================================================
// BALANCE SHEET VALIDATION TESTS
// =============================================================================

func TestCheckBalanceEquation(t *testing.T) {
	// Perfect balance
	check := CheckBalanceEquation(100, 60, 40, 0.01)
	if !check.IsBalanced {
		t.Error("Perfect balance not detected")
	}

	// Slight imbalance within tolerance
	check = CheckBalanceEquation(100, 60, 39.5, 0.01)
	if !check.IsBalanced {
		t.Error("Balance within tolerance not detected")
	}

	// Imbalanced
	check = CheckBalanceEquation(100, 60, 30, 0.01)
	if check.IsBalanced {
		t.Error("Imbalance not detected")
	}
	if check.Difference != 10 {
		t.Errorf("Difference = %v, want 10", check.Difference)
	}
}

func TestCheckBalanceIdentity(t *testing.T) {
	f := build(t, map[string]frame.Series{
		li.TotalAssets:      frame.FromFloats(1000, 1000),
		li.TotalLiabilities: frame.FromFloats(600, 600),
		li.TotalEquity:      {frame.Of(400), frame.Of(300)},
	})
	w := CheckBalanceIdentity(f, 0.01)
	if len(w) != 1 {
		t.Fatalf("expected 1 warning, got %v", w)
	}
	if w[0].Period.Year() != 2023 || w[0].Check != "balance_identity" {
		t.Errorf("unexpected warning %s", w[0])
	}
}

func TestCheckBalanceIdentitySkipsUnknown(t *testing.T) {
	f := build(t, map[string]frame.Series{
		li.TotalAssets:      {frame.Unknown, frame.Of(1000)},
		li.TotalLiabilities: frame.FromFloats(600, 600),
	})
	if w := CheckBalanceIdentity(f, 0.01); len(w) != 0 {
		t.Errorf("periods with missing totals must be skipped, got %v", w)
	}
}

// =============================================================================
// CASH FLOW VALIDATION TESTS
// =============================================================================

func TestCheckCashFlowIdentity(t *testing.T) {
	f := build(t, map[string]frame.Series{
		li.OCF:             frame.FromFloats(118254, 100),
		li.ICF:             frame.FromFloats(2935, -40),
		li.CFF:             frame.FromFloats(-121983, -20),
		li.FXEffect:        frame.FromFloats(0, 0),
		li.NetChangeInCash: frame.FromFloats(-794, 90),
	})
	w := CheckCashFlowIdentity(f, 0.01)
	if len(w) != 1 || w[0].Period.Year() != 2023 {
		t.Fatalf("expected only 2023 to fail, got %v", w)
	}
}
