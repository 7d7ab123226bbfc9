package validate

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// BenfordDistribution is the expected frequency for leading digits 1-9
var BenfordDistribution = [10]float64{
	0,
	0.30103,
	0.17609,
	0.12494,
	0.09691,
	0.07918,
	0.06695,
	0.05799,
	0.05115,
	0.04576,
}

// Benford deviation levels by mean absolute deviation.
const (
	BenfordLow          = "low"
	BenfordMedium       = "medium"
	BenfordHigh         = "high"
	BenfordInsufficient = "insufficient_data"

	benfordMediumMAD = 0.010
	benfordHighMAD   = 0.015
	// BenfordMinSample is the smallest number of usable values worth screening.
	BenfordMinSample = 100
)

// BenfordResult holds the analysis of leading digit distribution
type BenfordResult struct {
	DigitCounts [10]int `json:"digit_counts"`
	TotalCount  int     `json:"total_count"`
	MAD         float64 `json:"mad"` // Mean Absolute Deviation
	Flagged     bool    `json:"flagged"`
	Level       string  `json:"level"`
}

// AnalyzeBenford performs first-digit analysis on reported amounts. Values below 10 in
// magnitude are ignored.
func AnalyzeBenford(values []float64) BenfordResult {
	var res BenfordResult
	for _, v := range values {
		d := leadingDigit(v)
		if d == 0 {
			continue
		}
		res.DigitCounts[d]++
		res.TotalCount++
	}
	if res.TotalCount < BenfordMinSample {
		res.Level = BenfordInsufficient
		return res
	}

	sumDiff := 0.0
	for d := 1; d <= 9; d++ {
		actual := float64(res.DigitCounts[d]) / float64(res.TotalCount)
		sumDiff += math.Abs(actual - BenfordDistribution[d])
	}
	res.MAD = sumDiff / 9

	switch {
	case res.MAD > benfordHighMAD:
		res.Level = BenfordHigh
		res.Flagged = true
	case res.MAD > benfordMediumMAD:
		res.Level = BenfordMedium
	default:
		res.Level = BenfordLow
	}
	return res
}

func leadingDigit(v float64) int {
	v = math.Abs(v)
	if v < 10 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	return int(s[0] - '0')
}

// CheckBenford turns a flagged screen into a warning.
func CheckBenford(values []float64) []Warning {
	res := AnalyzeBenford(values)
	if !res.Flagged {
		return nil
	}
	return []Warning{{
		Period: time.Time{},
		Check:  "benford",
		Detail: fmt.Sprintf("leading digit MAD %.4f over %d values", res.MAD, res.TotalCount),
	}}
}
