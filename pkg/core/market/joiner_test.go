package market

import (
	"testing"
	"time"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAsOf(t *testing.T) {
	j := NewJoiner([]models.MarketCapSample{
		{Date: day(2023, 3, 30), MarketCap: 300},
		{Date: day(2023, 1, 3), MarketCap: 100},
		{Date: day(2023, 3, 31), MarketCap: 310},
		{Date: day(2023, 3, 31), MarketCap: 320},
	})

	tests := []struct {
		name string
		at   time.Time
		want frame.Num
	}{
		{"before first sample", day(2022, 12, 31), frame.Unknown},
		{"exact date uses last duplicate", day(2023, 3, 31), frame.Of(320)},
		{"between samples", day(2023, 2, 28), frame.Of(100)},
		{"after last sample", day(2023, 6, 30), frame.Of(320)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.AsOf(tt.at); got != tt.want {
				t.Errorf("AsOf(%s) = %v, want %v", tt.at.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestAttach(t *testing.T) {
	f, _ := frame.New([]time.Time{day(2022, 12, 31), day(2023, 12, 31)})
	j := NewJoiner([]models.MarketCapSample{{Date: day(2023, 6, 1), MarketCap: 5e9}})

	out, err := j.Attach(f)
	if err != nil {
		t.Fatal(err)
	}
	if out.Cell(Column, 0).Known() {
		t.Error("no market data before the period must be Unknown, not zero")
	}
	if out.Cell(Column, 1).Or(0) != 5e9 {
		t.Errorf("Market_Cap = %v", out.Cell(Column, 1))
	}
	if _, err := j.Attach(out); err == nil {
		t.Error("attaching twice must fail")
	}
}
