package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fin_metrics/pkg/core/calc"
	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/core/market"
	"fin_metrics/pkg/core/synthesis"
	"fin_metrics/pkg/models"
)

// --- Mocks ---

type MockSource struct {
	LoadObservationsFunc func(ctx context.Context, entity string) ([]models.Observation, error)
	LoadMarketCapsFunc   func(ctx context.Context, entity string) ([]models.MarketCapSample, error)
}

func (m *MockSource) LoadObservations(ctx context.Context, entity string) ([]models.Observation, error) {
	if m.LoadObservationsFunc != nil {
		return m.LoadObservationsFunc(ctx, entity)
	}
	return fixtureObservations(entity), nil
}

func (m *MockSource) LoadMarketCaps(ctx context.Context, entity string) ([]models.MarketCapSample, error) {
	if m.LoadMarketCapsFunc != nil {
		return m.LoadMarketCapsFunc(ctx, entity)
	}
	return fixtureCaps(), nil
}

type MockSink struct {
	mu        sync.Mutex
	written   []*EntityResult
	discarded int
	err       error
	commitErr error
}

func (m *MockSink) Name() string { return "mock" }

func (m *MockSink) Prepare(ctx context.Context, result *EntityResult) (Pending, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &mockPending{sink: m, result: result}, nil
}

type mockPending struct {
	sink   *MockSink
	result *EntityResult
	done   bool
}

func (p *mockPending) Commit(ctx context.Context) error {
	if p.sink.commitErr != nil {
		return p.sink.commitErr
	}
	p.sink.mu.Lock()
	defer p.sink.mu.Unlock()
	p.sink.written = append(p.sink.written, p.result)
	p.done = true
	return nil
}

func (p *mockPending) Discard() {
	if p.done {
		return
	}
	p.done = true
	p.sink.mu.Lock()
	defer p.sink.mu.Unlock()
	p.sink.discarded++
}

// --- Fixtures ---

func quarterEnd(year int, q int) time.Time {
	return time.Date(year, time.Month(q*3), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}

func fixtureObservations(entity string) []models.Observation {
	var out []models.Observation
	add := func(p time.Time, label string, v float64) {
		out = append(out, models.Observation{
			EntityID:     entity,
			ReportPeriod: p,
			RawLabel:     label,
			Value:        v,
			Source:       "em",
			UpdatedAt:    p.AddDate(0, 1, 0),
		})
	}
	for _, year := range []int{2022, 2023} {
		base := 10.0
		if year == 2023 {
			base = 12
		}
		for q := 1; q <= 4; q++ {
			p := quarterEnd(year, q)
			add(p, "营业收入", base*float64(q))
			add(p, "营业成本", base*float64(q)/2)
			add(p, "净利润", base*float64(q)/10)
			add(p, "资产总计", 1000)
			add(p, "负债合计", 600)
			add(p, "所有者权益(或股东权益)合计", 400)
		}
	}
	add(quarterEnd(2023, 4), "某个未知科目", 1)
	return out
}

func fixtureCaps() []models.MarketCapSample {
	return []models.MarketCapSample{
		{Date: time.Date(2022, 1, 4, 0, 0, 0, 0, time.UTC), MarketCap: 5e10},
		{Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), MarketCap: 6e10},
	}
}

func newTestOrchestrator(src Source, sinks ...Sink) *PipelineOrchestrator {
	return NewPipelineOrchestrator(src, lineitem.Default(), nil, sinks...)
}

// --- Tests ---

func TestCompute_Tables(t *testing.T) {
	p := newTestOrchestrator(&MockSource{})

	res, err := p.Compute("002508", fixtureObservations("002508"), fixtureCaps())
	require.NoError(t, err)

	require.Equal(t, 8, res.LTM.Len())
	require.Equal(t, 2, res.Annual.Len())
	assert.Equal(t, 1, res.UnmappedCount())

	// 2023Q1 LTM revenue = 12 + 40 - 10
	i := res.LTM.IndexOf(quarterEnd(2023, 1))
	v, ok := res.LTM.Cell(lineitem.Revenue, i).Value()
	require.True(t, ok)
	assert.InDelta(t, 42, v, 1e-9)

	// 2022 rows have no prior year, so LTM flows are Unknown.
	assert.False(t, res.LTM.Cell(lineitem.Revenue, res.LTM.IndexOf(quarterEnd(2022, 2))).Known())

	mc, ok := res.Annual.Cell(market.Column, 1).Value()
	require.True(t, ok)
	assert.Equal(t, 6e10, mc)

	yoy, ok := res.Annual.Cell("Rev_YoY", 1).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.2, yoy, 1e-9)

	for _, col := range []string{lineitem.Revenue, lineitem.TotalAssets, market.Column, calc.EBITDA, calc.EV, "Rev_YoY"} {
		assert.True(t, res.LTM.Has(col), col)
		assert.True(t, res.Annual.Has(col), col)
	}
	assert.Equal(t, res.LTM.Columns(), res.Annual.Columns())
}

func TestCompute_Idempotent(t *testing.T) {
	p := newTestOrchestrator(&MockSource{})
	obs := fixtureObservations("002508")

	first, err := p.Compute("002508", obs, fixtureCaps())
	require.NoError(t, err)
	second, err := p.Compute("002508", obs, fixtureCaps())
	require.NoError(t, err)

	assert.Equal(t, first.LTM, second.LTM)
	assert.Equal(t, first.Annual, second.Annual)
}

func TestCompute_NoMappedObservations(t *testing.T) {
	p := newTestOrchestrator(&MockSource{})
	obs := []models.Observation{{EntityID: "x", ReportPeriod: quarterEnd(2023, 1), RawLabel: "未知", Value: 1}}

	_, err := p.Compute("x", obs, nil)
	assert.True(t, errors.Is(err, synthesis.ErrNoObservations))
}

func TestCompute_BalanceWarnings(t *testing.T) {
	p := newTestOrchestrator(&MockSource{})
	obs := fixtureObservations("002508")
	obs = append(obs, models.Observation{
		EntityID:     "002508",
		ReportPeriod: quarterEnd(2023, 4),
		RawLabel:     "资产总计",
		Value:        2000,
		UpdatedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	res, err := p.Compute("002508", obs, nil)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "balance_identity", res.Warnings[0].Check)
	require.Len(t, res.Restatements, 1)
	assert.Equal(t, lineitem.TotalAssets, res.Restatements[0].Item)
}

func TestRunForEntity_WritesSinks(t *testing.T) {
	a, b := &MockSink{}, &MockSink{}
	p := newTestOrchestrator(&MockSource{}, a, b)

	res, err := p.RunForEntity(context.Background(), "002508")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.False(t, res.ComputedAt.IsZero())
	require.Len(t, a.written, 1)
	require.Len(t, b.written, 1)
	assert.Same(t, res, a.written[0])
}

func TestRunForEntity_SourceErrorWritesNothing(t *testing.T) {
	sink := &MockSink{}
	src := &MockSource{
		LoadObservationsFunc: func(ctx context.Context, entity string) ([]models.Observation, error) {
			return nil, ingest.ErrInvalidInput
		},
	}
	p := newTestOrchestrator(src, sink)

	_, err := p.RunForEntity(context.Background(), "002508")
	assert.ErrorIs(t, err, ingest.ErrInvalidInput)
	assert.Empty(t, sink.written)
}

func TestRunForEntity_SinkError(t *testing.T) {
	p := newTestOrchestrator(&MockSource{}, &MockSink{err: errors.New("disk full")})

	_, err := p.RunForEntity(context.Background(), "002508")
	assert.ErrorContains(t, err, "disk full")
}

func TestRunForEntity_LaterSinkFailureCommitsNothing(t *testing.T) {
	first := &MockSink{}
	p := newTestOrchestrator(&MockSource{}, first, &MockSink{err: errors.New("disk full")})

	_, err := p.RunForEntity(context.Background(), "002508")
	require.ErrorContains(t, err, "disk full")
	assert.Empty(t, first.written)
	assert.Equal(t, 1, first.discarded)
}

func TestDeliver_CancelledBeforeCommit(t *testing.T) {
	sink := &MockSink{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Deliver(ctx, &EntityResult{Entity: "002508"}, sink)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.written)
	assert.Equal(t, 1, sink.discarded)
}

func TestDeliver_CommitFailureNamesCommittedSinks(t *testing.T) {
	ok, bad := &MockSink{}, &MockSink{commitErr: errors.New("conn reset")}

	err := Deliver(context.Background(), &EntityResult{Entity: "002508"}, ok, bad)
	require.ErrorContains(t, err, "conn reset")
	assert.ErrorContains(t, err, "after mock committed")
	assert.Len(t, ok.written, 1)
	assert.Equal(t, 0, ok.discarded)
	assert.Equal(t, 1, bad.discarded)
}

func TestRunAll_IsolatesFailures(t *testing.T) {
	sink := &MockSink{}
	src := &MockSource{
		LoadObservationsFunc: func(ctx context.Context, entity string) ([]models.Observation, error) {
			if entity == "bad" {
				return nil, ingest.ErrInvalidInput
			}
			return fixtureObservations(entity), nil
		},
	}
	p := newTestOrchestrator(src, sink)
	p.SetParallelism(2)

	entities := []string{"002508", "bad", "600519", "000001"}
	outcomes := p.RunAll(context.Background(), entities)

	require.Len(t, outcomes, len(entities))
	for i, o := range outcomes {
		assert.Equal(t, entities[i], o.Entity)
		if o.Entity == "bad" {
			assert.ErrorIs(t, o.Err, ingest.ErrInvalidInput)
			assert.Nil(t, o.Result)
			continue
		}
		require.NoError(t, o.Err)
		assert.Equal(t, o.Entity, o.Result.Entity)
	}
	assert.Len(t, sink.written, 3)
}

func TestRunAll_CancelledContext(t *testing.T) {
	p := newTestOrchestrator(&MockSource{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := p.RunAll(ctx, []string{"002508"})
	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, context.Canceled)
}
