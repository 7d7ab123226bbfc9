package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "fin_metrics/pkg/config"
)

func TestHandleConfig(t *testing.T) {
	h := NewHandler(appconfig.Default())
	rec := httptest.NewRecorder()
	h.HandleConfig(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got appconfig.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "files", got.Input.Source)
	assert.Equal(t, []string{"csv"}, got.Output.Sinks)
}
