package frame

import (
	"errors"
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNumDivisionSafety(t *testing.T) {
	cases := []struct {
		name string
		n, d Num
	}{
		{"zero denominator", Of(10), Of(0)},
		{"unknown denominator", Of(10), Unknown},
		{"unknown numerator", Unknown, Of(2)},
		{"zero over zero", Of(0), Of(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.n.Div(tc.d); got.Known() {
				t.Errorf("expected Unknown, got %v", got)
			}
		})
	}

	if v, ok := Of(10).Div(Of(4)).Value(); !ok || v != 2.5 {
		t.Errorf("10/4 = %v (known=%v), want 2.5", v, ok)
	}
}

func TestNumNeverHoldsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Of(v).Known() {
			t.Errorf("Of(%v) should be Unknown", v)
		}
	}
	huge := Of(math.MaxFloat64)
	if huge.Mul(Of(10)).Known() {
		t.Error("overflow should collapse to Unknown")
	}
}

func TestNumJSON(t *testing.T) {
	b, _ := Unknown.MarshalJSON()
	if string(b) != "null" {
		t.Errorf("Unknown marshals to %s, want null", b)
	}
	b, _ = Of(1.5).MarshalJSON()
	if string(b) != "1.5" {
		t.Errorf("1.5 marshals to %s", b)
	}
	var n Num
	if err := n.UnmarshalJSON([]byte("42")); err != nil || n.Or(0) != 42 {
		t.Errorf("unmarshal 42: %v %v", n, err)
	}
}

func TestSeriesShiftDiffAvg(t *testing.T) {
	s := FromFloats(10, 20, 40)

	shift := s.Shift(1)
	if shift[0].Known() || shift[1].Or(-1) != 10 || shift[2].Or(-1) != 20 {
		t.Errorf("Shift(1) = %v", shift)
	}

	diff := s.Diff()
	if diff[0].Known() || diff[1].Or(0) != 10 || diff[2].Or(0) != 20 {
		t.Errorf("Diff = %v", diff)
	}

	avg := s.Avg()
	if avg[0].Known() || avg[1].Or(0) != 15 || avg[2].Or(0) != 30 {
		t.Errorf("Avg = %v", avg)
	}
}

func TestSeriesPctChange(t *testing.T) {
	s := Series{Of(100), Of(0), Of(110), Unknown, Of(50)}
	got := s.PctChange(1)

	if got[0].Known() {
		t.Error("first row has no prior and must be Unknown")
	}
	if v := got[1].Or(99); v != -1 {
		t.Errorf("0 vs 100 = %v, want -1", v)
	}
	if got[2].Known() {
		t.Error("prior zero must give Unknown, not Inf")
	}
	if got[3].Known() || got[4].Known() {
		t.Error("Unknown on either side must give Unknown")
	}
}

func TestSeriesUnlessZero(t *testing.T) {
	primary := Series{Of(0), Of(300), Unknown}
	fallback := FromFloats(500, 900, 700)
	got := primary.UnlessZero(fallback)

	if got[0].Or(0) != 500 {
		t.Errorf("zero primary should fall back, got %v", got[0])
	}
	if got[1].Or(0) != 300 {
		t.Errorf("non-zero primary should win, got %v", got[1])
	}
	if got[2].Known() {
		t.Errorf("Unknown primary stays Unknown, got %v", got[2])
	}
}

func TestSeriesForwardFill(t *testing.T) {
	s := Series{Unknown, Of(1000), Unknown, Of(0), Of(1200)}
	got := s.ForwardFill(func(n Num) bool { return !n.Known() || n.IsZero() })

	if got[0].Known() {
		t.Error("leading gap has nothing to carry")
	}
	want := []float64{1000, 1000, 1000, 1200}
	for i, w := range want {
		if got[i+1].Or(-1) != w {
			t.Errorf("row %d = %v, want %v", i+1, got[i+1], w)
		}
	}
	if s[2].Known() {
		t.Error("ForwardFill must not modify its receiver")
	}
}

func TestFrameBuilderRejectsSilentReassignment(t *testing.T) {
	f, err := New([]time.Time{date(2022, 12, 31), date(2023, 12, 31)})
	if err != nil {
		t.Fatal(err)
	}
	f, err = f.Derive("seed").Add("Revenue", FromFloats(1, 2)).Frame()
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.Derive("again").Add("Revenue", FromFloats(3, 4)).Frame()
	if !errors.Is(err, ErrColumnExists) {
		t.Errorf("expected ErrColumnExists, got %v", err)
	}

	_, err = f.Derive("bad").Override("EBIT", FromFloats(3, 4), OverrideForwardFill).Frame()
	if !errors.Is(err, ErrColumnMissing) {
		t.Errorf("expected ErrColumnMissing, got %v", err)
	}

	_, err = f.Derive("short").Add("COGS", FromFloats(1)).Frame()
	if !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}

	g, err := f.Derive("ffill").Override("Revenue", FromFloats(5, 6), OverrideForwardFill).Frame()
	if err != nil {
		t.Fatal(err)
	}
	if f.Cell("Revenue", 0).Or(0) != 1 {
		t.Error("override leaked into the source frame")
	}
	if g.Cell("Revenue", 0).Or(0) != 5 {
		t.Error("override not applied")
	}
	if ov := g.Overrides(); len(ov) != 1 || ov[0].Reason != OverrideForwardFill || ov[0].Stage != "ffill" {
		t.Errorf("override log = %+v", ov)
	}
}

func TestFrameFilterAndIndex(t *testing.T) {
	f, _ := New([]time.Time{date(2022, 12, 31), date(2023, 3, 31), date(2023, 12, 31)})
	f, _ = f.Derive("seed").Add("X", FromFloats(1, 2, 3)).Frame()

	annual := f.Filter(func(p time.Time) bool { return p.Month() == time.December })
	if annual.Len() != 2 || annual.Cell("X", 1).Or(0) != 3 {
		t.Errorf("Filter kept %d rows, X[1]=%v", annual.Len(), annual.Cell("X", 1))
	}
	if f.IndexOf(date(2023, 3, 31)) != 1 || f.IndexOf(date(2023, 6, 30)) != -1 {
		t.Error("IndexOf mismatch")
	}
}

func TestNewRejectsUnorderedPeriods(t *testing.T) {
	if _, err := New([]time.Time{date(2023, 12, 31), date(2023, 12, 31)}); err == nil {
		t.Error("duplicate periods must be rejected")
	}
}
