package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/models"
)

func TestCheckObservation(t *testing.T) {
	tests := []struct {
		name   string
		period time.Time
		ok     bool
	}{
		{"q1", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), true},
		{"q4", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"month end", time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC), false},
		{"mid quarter month", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkObservation(models.Observation{EntityID: "002508", ReportPeriod: tt.period, RawLabel: "营业收入"})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ingest.ErrInvalidInput)
		})
	}
}

func TestDateUTC(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	got := dateUTC(time.Date(2023, 9, 30, 23, 0, 0, 0, shanghai))
	assert.Equal(t, time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC), got)
}
