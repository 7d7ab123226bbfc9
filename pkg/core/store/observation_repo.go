package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/models"
)

// Schema assumption:
//
//	CREATE TABLE financial_observations (
//	  entity_id TEXT, report_period DATE, statement_type TEXT, account TEXT,
//	  value DOUBLE PRECISION, source TEXT, is_audited TEXT,
//	  announcement_date DATE, currency TEXT, report_type TEXT, updated_at TIMESTAMPTZ
//	);
//	CREATE TABLE market_cap_history (
//	  entity_id TEXT, trade_date DATE, market_cap DOUBLE PRECISION -- currency units
//	);

// ObservationRepo reads raw observations and market caps from Postgres.
type ObservationRepo struct {
	pool *pgxpool.Pool
}

// NewObservationRepo creates a repository over pool.
func NewObservationRepo(pool *pgxpool.Pool) *ObservationRepo {
	return &ObservationRepo{pool: pool}
}

// LoadObservations returns every observation of entity. NULL and NaN values are skipped;
// a report period that is not a quarter end fails the entity with ingest.ErrInvalidInput.
func (r *ObservationRepo) LoadObservations(ctx context.Context, entity string) ([]models.Observation, error) {
	if r.pool == nil {
		return nil, ErrNotInitialized
	}

	query := `
		SELECT report_period, COALESCE(statement_type, ''), account, value,
		       COALESCE(source, ''), COALESCE(is_audited, ''), announcement_date,
		       COALESCE(currency, ''), COALESCE(report_type, ''), updated_at
		FROM financial_observations
		WHERE entity_id = $1 AND value IS NOT NULL
		ORDER BY report_period, account
	`
	rows, err := r.pool.Query(ctx, query, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var out []models.Observation
	for rows.Next() {
		o := models.Observation{EntityID: entity}
		var announced, updated *time.Time
		if err := rows.Scan(
			&o.ReportPeriod, &o.StatementType, &o.RawLabel, &o.Value,
			&o.Source, &o.IsAudited, &announced,
			&o.Currency, &o.ReportType, &updated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		o.ReportPeriod = dateUTC(o.ReportPeriod)
		if err := checkObservation(o); err != nil {
			return nil, err
		}
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			continue
		}
		if announced != nil {
			o.AnnouncementDate = announced.UTC()
		}
		if updated != nil {
			o.UpdatedAt = updated.UTC()
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}
	return out, nil
}

// LoadMarketCaps returns the market-cap history of entity in date order.
func (r *ObservationRepo) LoadMarketCaps(ctx context.Context, entity string) ([]models.MarketCapSample, error) {
	if r.pool == nil {
		return nil, ErrNotInitialized
	}

	query := `
		SELECT trade_date, market_cap
		FROM market_cap_history
		WHERE entity_id = $1 AND market_cap IS NOT NULL
		ORDER BY trade_date
	`
	rows, err := r.pool.Query(ctx, query, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to query market caps: %w", err)
	}
	defer rows.Close()

	var out []models.MarketCapSample
	for rows.Next() {
		var s models.MarketCapSample
		if err := rows.Scan(&s.Date, &s.MarketCap); err != nil {
			return nil, fmt.Errorf("failed to scan market cap: %w", err)
		}
		s.Date = dateUTC(s.Date)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read market caps: %w", err)
	}
	return out, nil
}

// checkObservation applies the same period rule as the CSV reader: every report period
// must be a quarter end.
func checkObservation(o models.Observation) error {
	if !ingest.IsQuarterEnd(o.ReportPeriod) {
		return fmt.Errorf("%w: report period %s of %q is not a quarter end",
			ingest.ErrInvalidInput, o.ReportPeriod.Format("2006-01-02"), o.RawLabel)
	}
	return nil
}

// dateUTC drops the clock and zone a DATE column may carry after scanning.
func dateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
