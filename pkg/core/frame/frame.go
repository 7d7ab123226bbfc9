package frame

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrColumnExists is returned when a stage adds a column that is already present.
	ErrColumnExists = errors.New("column already exists")
	// ErrColumnMissing is returned when a stage overrides a column that does not exist.
	ErrColumnMissing = errors.New("column does not exist")
	// ErrLength is returned when a series does not match the frame's period count.
	ErrLength = errors.New("series length does not match periods")
)

// OverrideReason names a documented replacement of an existing column.
// Columns may only be superseded through one of these reasons.
type OverrideReason string

const (
	// OverrideLTM replaces flow items with reconstructed trailing-twelve-month values.
	OverrideLTM OverrideReason = "ltm_reconstruction"
	// OverrideForwardFill carries status totals across periods without a filing.
	OverrideForwardFill OverrideReason = "forward_fill"
)

// Override records one superseded column.
type Override struct {
	Column string
	Reason OverrideReason
	Stage  string
}

// Frame is an immutable period-ordered table. Use Derive to produce a modified copy.
type Frame struct {
	periods   []time.Time
	names     []string
	cols      map[string]Series
	overrides []Override
}

// New creates an empty frame over the given periods, which must be strictly ascending.
func New(periods []time.Time) (*Frame, error) {
	for i := 1; i < len(periods); i++ {
		if !periods[i].After(periods[i-1]) {
			return nil, fmt.Errorf("periods not strictly ascending at %s", periods[i].Format("2006-01-02"))
		}
	}
	p := make([]time.Time, len(periods))
	copy(p, periods)
	return &Frame{periods: p, cols: make(map[string]Series)}, nil
}

// Len is the number of period rows.
func (f *Frame) Len() int { return len(f.periods) }

// Periods returns a copy of the period axis.
func (f *Frame) Periods() []time.Time {
	p := make([]time.Time, len(f.periods))
	copy(p, f.periods)
	return p
}

// Period returns the date of row i.
func (f *Frame) Period(i int) time.Time { return f.periods[i] }

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	n := make([]string, len(f.names))
	copy(n, f.names)
	return n
}

// Has reports whether the column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Col returns a copy of the column, or an all-Unknown series if it does not exist.
func (f *Frame) Col(name string) Series {
	s, ok := f.cols[name]
	if !ok {
		return Unknowns(f.Len())
	}
	return s.Clone()
}

// Cell returns one value.
func (f *Frame) Cell(name string, row int) Num {
	s, ok := f.cols[name]
	if !ok || row < 0 || row >= len(s) {
		return Unknown
	}
	return s[row]
}

// Row returns the values of row i in column order.
func (f *Frame) Row(i int) []Num {
	out := make([]Num, len(f.names))
	for j, name := range f.names {
		out[j] = f.cols[name][i]
	}
	return out
}

// IndexOf returns the row of the given period, or -1.
func (f *Frame) IndexOf(period time.Time) int {
	i := sort.Search(len(f.periods), func(i int) bool { return !f.periods[i].Before(period) })
	if i < len(f.periods) && f.periods[i].Equal(period) {
		return i
	}
	return -1
}

// Overrides lists every column superseded while building this frame.
func (f *Frame) Overrides() []Override {
	o := make([]Override, len(f.overrides))
	copy(o, f.overrides)
	return o
}

// Filter returns a new frame with only the rows whose period satisfies keep.
func (f *Frame) Filter(keep func(time.Time) bool) *Frame {
	var idx []int
	for i, p := range f.periods {
		if keep(p) {
			idx = append(idx, i)
		}
	}
	out := &Frame{
		periods:   make([]time.Time, len(idx)),
		names:     f.Columns(),
		cols:      make(map[string]Series, len(f.cols)),
		overrides: f.Overrides(),
	}
	for j, i := range idx {
		out.periods[j] = f.periods[i]
	}
	for name, s := range f.cols {
		sub := make(Series, len(idx))
		for j, i := range idx {
			sub[j] = s[i]
		}
		out.cols[name] = sub
	}
	return out
}

// Derive starts a new snapshot based on f. f itself is never modified.
func (f *Frame) Derive(stage string) *Builder {
	next := &Frame{
		periods:   f.periods,
		names:     f.Columns(),
		cols:      make(map[string]Series, len(f.cols)),
		overrides: f.Overrides(),
	}
	for k, v := range f.cols {
		next.cols[k] = v
	}
	return &Builder{stage: stage, next: next}
}

// Builder accumulates the columns of one stage. The first error sticks and is returned by Frame.
type Builder struct {
	stage string
	next  *Frame
	err   error
}

// Len is the number of period rows.
func (b *Builder) Len() int { return b.next.Len() }

// Col reads a column, including ones added earlier in the same stage.
func (b *Builder) Col(name string) Series { return b.next.Col(name) }

// Has reports whether the column exists so far.
func (b *Builder) Has(name string) bool { return b.next.Has(name) }

// Add appends a new column.
func (b *Builder) Add(name string, s Series) *Builder {
	if b.err != nil {
		return b
	}
	if len(s) != b.next.Len() {
		b.err = fmt.Errorf("stage %s: %s: %w", b.stage, name, ErrLength)
		return b
	}
	if b.next.Has(name) {
		b.err = fmt.Errorf("stage %s: %s: %w", b.stage, name, ErrColumnExists)
		return b
	}
	b.next.names = append(b.next.names, name)
	b.next.cols[name] = s.Clone()
	return b
}

// Override replaces an existing column for a documented reason.
func (b *Builder) Override(name string, s Series, reason OverrideReason) *Builder {
	if b.err != nil {
		return b
	}
	if len(s) != b.next.Len() {
		b.err = fmt.Errorf("stage %s: %s: %w", b.stage, name, ErrLength)
		return b
	}
	if !b.next.Has(name) {
		b.err = fmt.Errorf("stage %s: %s: %w", b.stage, name, ErrColumnMissing)
		return b
	}
	b.next.cols[name] = s.Clone()
	b.next.overrides = append(b.next.overrides, Override{Column: name, Reason: reason, Stage: b.stage})
	return b
}

// Frame finishes the stage.
func (b *Builder) Frame() (*Frame, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.next, nil
}
