package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ternarybob/arbor"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/pipeline"
	"fin_metrics/pkg/models"
)

// Schema assumption:
//
//	CREATE TABLE financial_metrics (
//	  entity_id TEXT, table_kind TEXT, report_period DATE,
//	  column_index INT, metric TEXT, value DOUBLE PRECISION, -- NULL is Unknown
//	  run_id UUID, computed_at TIMESTAMPTZ,
//	  PRIMARY KEY (entity_id, table_kind, report_period, metric)
//	);
var metricColumns = []string{
	"entity_id", "table_kind", "report_period", "column_index", "metric", "value", "run_id", "computed_at",
}

// StoredTable is one table as last persisted for an entity.
type StoredTable struct {
	Entity     string
	Kind       models.TableKind
	RunID      uuid.UUID
	ComputedAt time.Time
	Frame      *frame.Frame
}

// MetricsRepo persists computed tables in long format. It is a pipeline.Sink.
type MetricsRepo struct {
	pool   *pgxpool.Pool
	logger arbor.ILogger
}

// NewMetricsRepo creates a repository over pool.
func NewMetricsRepo(pool *pgxpool.Pool, logger arbor.ILogger) *MetricsRepo {
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &MetricsRepo{pool: pool, logger: logger}
}

func (r *MetricsRepo) Name() string { return "postgres" }

// Save replaces every stored row of the entity in one transaction.
func (r *MetricsRepo) Save(ctx context.Context, result *pipeline.EntityResult) error {
	return pipeline.Deliver(ctx, result, r)
}

// Prepare implements pipeline.Sink. The entity's rows are replaced inside a transaction
// that stays open until the pipeline commits.
func (r *MetricsRepo) Prepare(ctx context.Context, result *pipeline.EntityResult) (pipeline.Pending, error) {
	if r.pool == nil {
		return nil, ErrNotInitialized
	}

	rows := metricRows(result)
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM financial_metrics WHERE entity_id = $1`, result.Entity); err != nil {
		tx.Rollback(context.Background())
		return nil, fmt.Errorf("failed to clear metrics: %w", err)
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"financial_metrics"}, metricColumns, pgx.CopyFromRows(rows))
	if err != nil {
		tx.Rollback(context.Background())
		return nil, fmt.Errorf("failed to copy metrics: %w", err)
	}
	return &pendingMetrics{tx: tx, logger: r.logger, result: result, rows: n}, nil
}

// pendingMetrics is an open transaction holding one entity's replacement rows.
type pendingMetrics struct {
	tx     pgx.Tx
	logger arbor.ILogger
	result *pipeline.EntityResult
	rows   int64
	done   bool
}

func (p *pendingMetrics) Commit(ctx context.Context) error {
	if err := p.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit metrics: %w", err)
	}
	p.done = true
	p.logger.Debug().
		Str("entity", p.result.Entity).
		Str("run_id", p.result.RunID.String()).
		Int64("rows", p.rows).
		Msg("Saved metrics")
	return nil
}

// Discard rolls the transaction back. The context may already be cancelled here.
func (p *pendingMetrics) Discard() {
	if p.done {
		return
	}
	p.done = true
	p.tx.Rollback(context.Background())
}

// metricRows flattens both tables into COPY rows. Unknown cells become NULL.
func metricRows(result *pipeline.EntityResult) [][]any {
	runID := pgtype.UUID{Bytes: result.RunID, Valid: true}
	var rows [][]any
	for _, kind := range []models.TableKind{models.TableLTM, models.TableAnnual} {
		f := result.Table(kind)
		if f == nil {
			continue
		}
		for i, p := range f.Periods() {
			for j, name := range f.Columns() {
				var value *float64
				if v, ok := f.Cell(name, i).Value(); ok {
					value = &v
				}
				rows = append(rows, []any{
					result.Entity, string(kind), p, int32(j), name, value, runID, result.ComputedAt,
				})
			}
		}
	}
	return rows
}

// metricRecord is one stored cell.
type metricRecord struct {
	period      time.Time
	columnIndex int
	metric      string
	value       *float64
}

// Load returns the stored table of entity, or pgx.ErrNoRows when nothing is stored.
func (r *MetricsRepo) Load(ctx context.Context, entity string, kind models.TableKind) (*StoredTable, error) {
	if r.pool == nil {
		return nil, ErrNotInitialized
	}

	query := `
		SELECT report_period, column_index, metric, value, run_id, computed_at
		FROM financial_metrics
		WHERE entity_id = $1 AND table_kind = $2
		ORDER BY report_period, column_index
	`
	rows, err := r.pool.Query(ctx, query, entity, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	out := &StoredTable{Entity: entity, Kind: kind}
	var records []metricRecord
	for rows.Next() {
		var rec metricRecord
		var runID pgtype.UUID
		if err := rows.Scan(&rec.period, &rec.columnIndex, &rec.metric, &rec.value, &runID, &out.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		rec.period = dateUTC(rec.period)
		out.RunID = uuid.UUID(runID.Bytes)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no %s metrics stored for %s: %w", kind, entity, pgx.ErrNoRows)
	}

	f, err := assembleFrame(records)
	if err != nil {
		return nil, err
	}
	out.Frame = f
	return out, nil
}

// assembleFrame rebuilds a frame from long records, ordering columns by their stored index.
func assembleFrame(records []metricRecord) (*frame.Frame, error) {
	periodIdx := make(map[time.Time]int)
	var periods []time.Time
	colIdx := make(map[string]int)
	for _, rec := range records {
		if _, ok := periodIdx[rec.period]; !ok {
			periodIdx[rec.period] = 0
			periods = append(periods, rec.period)
		}
		if cur, ok := colIdx[rec.metric]; !ok || rec.columnIndex < cur {
			colIdx[rec.metric] = rec.columnIndex
		}
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	for i, p := range periods {
		periodIdx[p] = i
	}
	names := make([]string, 0, len(colIdx))
	for name := range colIdx {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return colIdx[names[i]] < colIdx[names[j]] })

	cols := make(map[string]frame.Series, len(names))
	for _, name := range names {
		cols[name] = frame.Unknowns(len(periods))
	}
	for _, rec := range records {
		if rec.value != nil {
			cols[rec.metric][periodIdx[rec.period]] = frame.Of(*rec.value)
		}
	}

	f, err := frame.New(periods)
	if err != nil {
		return nil, err
	}
	b := f.Derive("stored")
	for _, name := range names {
		b.Add(name, cols[name])
	}
	return b.Frame()
}
