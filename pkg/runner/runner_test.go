package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"fin_metrics/pkg/config"
	"fin_metrics/pkg/core/pipeline"
)

func TestSinks(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Sinks = []string{"csv", "xlsx"}

	sinks, err := Sinks(cfg, arbor.NewLogger())
	require.NoError(t, err)
	require.Len(t, sinks, 2)
	assert.Equal(t, "csv", sinks[0].Name())
	assert.Equal(t, "xlsx", sinks[1].Name())

	cfg.Output.Sinks = []string{"parquet"}
	_, err = Sinks(cfg, arbor.NewLogger())
	assert.Error(t, err)
}

func TestBuild_FileRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	obs := "symbol,report_date,statement_type,account,value,source,is_audited,announcement_date,currency,type,updated_at\n" +
		"002508,20221231,income_statement,营业收入,100,em,是,,CNY,FY,\n" +
		"002508,20231231,income_statement,营业收入,120,em,是,,CNY,FY,\n"
	require.NoError(t, os.WriteFile(filepath.Join(in, "002508_financials_10y_long_combined.csv"), []byte(obs), 0o644))

	aliases := filepath.Join(in, "aliases.yaml")
	require.NoError(t, os.WriteFile(aliases, []byte("labels:\n  主营收入: Revenue\n"), 0o644))

	cfg := config.Default()
	cfg.Input.Dir = in
	cfg.Output.Dir = out
	cfg.LineItems = aliases

	logger := arbor.NewLogger()
	p, cleanup, err := Build(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer cleanup()

	outcomes := p.RunAll(context.Background(), []string{"002508", "000001"})
	require.Len(t, outcomes, 2)
	require.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.Equal(t, 1, Summarize(logger, outcomes))

	_, err = os.Stat(filepath.Join(out, "002508", "annual_metrics.csv"))
	assert.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	outcomes := []pipeline.Outcome{
		{Entity: "a"},
		{Entity: "b", Err: errors.New("boom")},
	}
	assert.Equal(t, 1, Summarize(arbor.NewLogger(), outcomes))
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(nil, context.Background())
	_, err := s.Add("not a cron spec", func(context.Context) {})
	assert.Error(t, err)

	_, err = s.Add("0 18 * * 1-5", func(context.Context) {})
	require.NoError(t, err)
	s.Start()
	assert.NotEmpty(t, s.Next())
	s.Stop()
}
