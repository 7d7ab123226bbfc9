// Package metrics serves stored metric tables over HTTP.
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ternarybob/arbor"

	"fin_metrics/pkg/core/export"
	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/store"
	"fin_metrics/pkg/models"
)

// TableLoader reads a persisted table. store.MetricsRepo implements it.
type TableLoader interface {
	Load(ctx context.Context, entity string, kind models.TableKind) (*store.StoredTable, error)
}

// TableResponse is the JSON view of one table. Rows hold the period followed by one
// value per remaining column, null for Unknown.
type TableResponse struct {
	Entity     string          `json:"entity"`
	Table      string          `json:"table"`
	RunID      uuid.UUID       `json:"run_id"`
	ComputedAt time.Time       `json:"computed_at"`
	Columns    []string        `json:"columns"`
	Rows       [][]interface{} `json:"rows"`
}

// Handler holds dependencies for metrics endpoints
type Handler struct {
	loader TableLoader
	logger arbor.ILogger
}

// NewHandler creates a new metrics handler
func NewHandler(loader TableLoader, logger arbor.ILogger) *Handler {
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &Handler{loader: loader, logger: logger}
}

// Register mounts the endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/metrics/{entity}", h.HandleTable)
	mux.HandleFunc("GET /api/metrics/{entity}/xlsx", h.HandleWorkbook)
}

// HandleTable serves GET /api/metrics/{entity}?table=ltm|annual. The default table is ltm.
func (h *Handler) HandleTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	entity := r.PathValue("entity")
	kind, err := parseTable(r.URL.Query().Get("table"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.loader.Load(r.Context(), entity, kind)
	if err != nil {
		h.fail(w, entity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toResponse(stored)); err != nil {
		h.logger.Warn().Err(err).Str("entity", entity).Msg("Failed to encode metrics response")
	}
}

// HandleWorkbook serves both stored tables as an XLSX download.
func (h *Handler) HandleWorkbook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	entity := r.PathValue("entity")

	tables := make(map[models.TableKind]*frame.Frame, len(export.Tables))
	for _, kind := range export.Tables {
		stored, err := h.loader.Load(r.Context(), entity, kind)
		if err != nil {
			h.fail(w, entity, err)
			return
		}
		tables[kind] = stored.Frame
	}

	wb, err := export.BuildWorkbook(tables)
	if err != nil {
		h.fail(w, entity, err)
		return
	}
	defer wb.Close()

	buf, err := wb.WriteToBuffer()
	if err != nil {
		h.fail(w, entity, fmt.Errorf("write workbook: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_metrics.xlsx"`, entity))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}

func (h *Handler) fail(w http.ResponseWriter, entity string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, fmt.Sprintf("no metrics stored for %s", entity), http.StatusNotFound)
		return
	}
	h.logger.Error().Err(err).Str("entity", entity).Msg("Metrics request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func parseTable(s string) (models.TableKind, error) {
	switch models.TableKind(s) {
	case "", models.TableLTM:
		return models.TableLTM, nil
	case models.TableAnnual:
		return models.TableAnnual, nil
	}
	return "", fmt.Errorf("unknown table %q (want ltm or annual)", s)
}

func toResponse(st *store.StoredTable) *TableResponse {
	f := st.Frame
	cols := f.Columns()
	resp := &TableResponse{
		Entity:     st.Entity,
		Table:      string(st.Kind),
		RunID:      st.RunID,
		ComputedAt: st.ComputedAt,
		Columns:    export.Header(f),
		Rows:       make([][]interface{}, f.Len()),
	}
	for i, p := range f.Periods() {
		row := make([]interface{}, 0, len(cols)+1)
		row = append(row, p.Format("2006-01-02"))
		for _, name := range cols {
			row = append(row, f.Cell(name, i))
		}
		resp.Rows[i] = row
	}
	return resp
}
