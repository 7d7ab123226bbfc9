package config

import (
	"encoding/json"
	"net/http"

	appconfig "fin_metrics/pkg/config"
)

// Handler serves the effective run configuration.
type Handler struct {
	Config *appconfig.Config
}

// NewHandler creates a new config handler
func NewHandler(cfg *appconfig.Config) *Handler {
	return &Handler{Config: cfg}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.Config); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
