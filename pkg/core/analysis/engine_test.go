package analysis

import (
	"math"
	"testing"
	"time"

	"fin_metrics/pkg/core/calc"
	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/models"
)

func table(t *testing.T, cols map[string]frame.Series, n int) *frame.Frame {
	t.Helper()
	periods := make([]time.Time, n)
	for i := range periods {
		periods[i] = time.Date(2020, time.Month(3*(i%4)+4), 0, 0, 0, 0, 0, time.UTC).AddDate(i/4, 0, 0)
	}
	f, err := frame.New(periods)
	if err != nil {
		t.Fatal(err)
	}
	b := f.Derive("seed")
	for _, h := range Headlines {
		s, ok := cols[h.Source]
		if !ok {
			s = frame.Zeros(n)
		}
		b.Add(h.Source, s)
	}
	f, err = b.Frame()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestAnnotateLTMFirstFourRowsUnknown(t *testing.T) {
	rev := frame.FromFloats(100, 110, 120, 130, 150, 121, 0, 143)
	f := table(t, map[string]frame.Series{li.Revenue: rev}, len(rev))

	out, err := NewAnalysisEngine().Annotate(f, models.TableLTM)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		for _, h := range Headlines {
			if out.Cell(h.Column, i).Known() {
				t.Errorf("%s[%d] must be Unknown without a prior-year row", h.Column, i)
			}
		}
	}

	if v, _ := out.Cell("Rev_YoY", 4).Value(); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("Rev_YoY[4] = %v, want 0.5", v)
	}
	if v, _ := out.Cell("Rev_YoY", 5).Value(); math.Abs(v-0.1) > 1e-9 {
		t.Errorf("Rev_YoY[5] = %v, want 0.1", v)
	}
	if v, _ := out.Cell("Rev_YoY", 6).Value(); v != -1 {
		t.Errorf("Rev_YoY[6] = %v, want -1", v)
	}
	if v, _ := out.Cell("Rev_YoY", 7).Value(); math.Abs(v-0.1) > 1e-9 {
		t.Errorf("Rev_YoY[7] = %v, want 0.1", v)
	}
	// Zero priors everywhere else.
	if out.Cell("EBITDA_YoY", 5).Known() {
		t.Error("zero prior must give Unknown")
	}
}

func TestAnnotateAnnualUsesPreviousRow(t *testing.T) {
	f := table(t, map[string]frame.Series{
		calc.EBITDA: {frame.Of(200), frame.Unknown, frame.Of(300), frame.Of(330)},
	}, 4)

	out, err := NewAnalysisEngine().Annotate(f, models.TableAnnual)
	if err != nil {
		t.Fatal(err)
	}
	want := []frame.Num{frame.Unknown, frame.Unknown, frame.Unknown, frame.Of(330.0/300 - 1)}
	for i, w := range want {
		got := out.Cell("EBITDA_YoY", i)
		if got.Known() != w.Known() || math.Abs(got.Or(0)-w.Or(0)) > 1e-9 {
			t.Errorf("EBITDA_YoY[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLag(t *testing.T) {
	if Lag(models.TableLTM) != 4 || Lag(models.TableAnnual) != 1 {
		t.Error("unexpected lag")
	}
}
