package ingest

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"fin_metrics/pkg/models"
)

// DefaultMarketCapScale converts the upstream export unit (1e8 currency units) to currency units.
const DefaultMarketCapScale = 1e8

// ObservationRow is one line of the long-format observation file.
type ObservationRow struct {
	Symbol           string `csv:"symbol"`
	ReportDate       string `csv:"report_date"`
	StatementType    string `csv:"statement_type"`
	Account          string `csv:"account"`
	Value            string `csv:"value"`
	Source           string `csv:"source"`
	IsAudited        string `csv:"is_audited"`
	AnnouncementDate string `csv:"announcement_date"`
	Currency         string `csv:"currency"`
	Type             string `csv:"type"`
	UpdatedAt        string `csv:"updated_at"`
}

// MarketCapRow is one line of the market-cap history file.
// The legacy export names the column mkt_cap_billion_cny even though its unit is 1e8.
type MarketCapRow struct {
	Date      string `csv:"date"`
	MarketCap string `csv:"market_cap"`
	Legacy    string `csv:"mkt_cap_billion_cny"`
}

var unitScale = decimal.NewFromInt(1)

// ReadObservationsCSV decodes observations for entity. Rows belonging to another symbol
// are skipped, as are rows with an empty or "nan" value. When entity is empty every row
// is kept and EntityID is taken from the file.
func ReadObservationsCSV(r io.Reader, entity string) ([]models.Observation, error) {
	var rows []*ObservationRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode observations: %v", ErrInvalidInput, err)
	}
	want := NormalizeSymbol(entity)

	out := make([]models.Observation, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		symbol := NormalizeSymbol(row.Symbol)
		if want != "" && symbol != "" && symbol != want {
			continue
		}
		value, ok, err := ParseValue(row.Value, unitScale)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		period, err := ParseReportDate(row.ReportDate)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		announced, err := ParseTimestamp(row.AnnouncementDate)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		updated, err := ParseTimestamp(row.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if strings.TrimSpace(row.Account) == "" {
			return nil, fmt.Errorf("line %d: %w: empty account label", line, ErrInvalidInput)
		}

		id := want
		if id == "" {
			id = symbol
		}
		out = append(out, models.Observation{
			EntityID:         id,
			ReportPeriod:     period,
			StatementType:    strings.TrimSpace(row.StatementType),
			RawLabel:         strings.TrimSpace(row.Account),
			Value:            value,
			Source:           strings.TrimSpace(row.Source),
			IsAudited:        strings.TrimSpace(row.IsAudited),
			AnnouncementDate: announced,
			Currency:         strings.TrimSpace(row.Currency),
			ReportType:       strings.TrimSpace(row.Type),
			UpdatedAt:        updated,
		})
	}
	return out, nil
}

// ReadMarketCapCSV decodes a market-cap history and multiplies every value by scale.
// The result is sorted by date.
func ReadMarketCapCSV(r io.Reader, scale float64) ([]models.MarketCapSample, error) {
	var rows []*MarketCapRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode market caps: %v", ErrInvalidInput, err)
	}
	factor := decimal.NewFromFloat(scale)

	out := make([]models.MarketCapSample, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		raw := row.MarketCap
		if strings.TrimSpace(raw) == "" {
			raw = row.Legacy
		}
		value, ok, err := ParseValue(raw, factor)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		date, err := ParseTimestamp(row.Date)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if date.IsZero() {
			return nil, fmt.Errorf("line %d: %w: empty date", line, ErrInvalidInput)
		}
		out = append(out, models.MarketCapSample{Date: date, MarketCap: value})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
