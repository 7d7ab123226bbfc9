// Package export writes computed tables to files. Every sink stages its files next to
// the destination and renames them into place only when the pipeline commits.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/models"
)

// PeriodColumn is the first column of every exported table.
const PeriodColumn = "report_period"

// Tables in export order.
var Tables = []models.TableKind{models.TableLTM, models.TableAnnual}

// FormatNum renders a cell with the shortest representation that parses back to the
// same float64. Unknown is the empty string.
func FormatNum(n frame.Num) string {
	v, ok := n.Value()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Header is the exported column list of f.
func Header(f *frame.Frame) []string {
	return append([]string{PeriodColumn}, f.Columns()...)
}

// Records renders f as string rows without the header.
func Records(f *frame.Frame) [][]string {
	cols := f.Columns()
	out := make([][]string, f.Len())
	for i, p := range f.Periods() {
		row := make([]string, 0, len(cols)+1)
		row = append(row, p.Format("2006-01-02"))
		for _, name := range cols {
			row = append(row, FormatNum(f.Cell(name, i)))
		}
		out[i] = row
	}
	return out
}

// entityDir returns <root>/<entity>, creating it.
func entityDir(root, entity string) (string, error) {
	if entity == "" || strings.ContainsAny(entity, `/\`) || entity == "." || entity == ".." {
		return "", fmt.Errorf("bad entity id %q", entity)
	}
	dir := filepath.Join(root, entity)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

// rename is swapped in tests to simulate a failing filesystem.
var rename = os.Rename

// staged collects temporary files and moves them to their final names on commit. It is
// the pipeline.Pending of the file sinks.
type staged struct {
	dir    string
	files  map[string]string // final name -> temp path
	order  []string
	onDone func()
}

func newStaged(dir string) *staged {
	return &staged{dir: dir, files: make(map[string]string)}
}

// create opens a temporary file that will become name on commit.
func (s *staged) create(name string) (*os.File, error) {
	f, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	s.files[name] = f.Name()
	s.order = append(s.order, name)
	return f, nil
}

// Commit moves every staged file into place. Existing files are set aside first and
// restored if any rename fails, so the directory holds either all new files or all old ones.
func (s *staged) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	backups := make(map[string]string)
	var done []string
	restore := func(name string) {
		final := filepath.Join(s.dir, name)
		if b, ok := backups[name]; ok {
			rename(b, final)
		} else {
			os.Remove(final)
		}
	}
	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			restore(done[i])
		}
	}

	for _, name := range s.order {
		final := filepath.Join(s.dir, name)
		if _, err := os.Lstat(final); err == nil {
			b := filepath.Join(s.dir, "."+name+".bak")
			if err := rename(final, b); err != nil {
				rollback()
				return fmt.Errorf("set aside %s: %w", name, err)
			}
			backups[name] = b
		}
		if err := rename(s.files[name], final); err != nil {
			if b, ok := backups[name]; ok {
				rename(b, final)
			}
			rollback()
			return fmt.Errorf("commit %s: %w", name, err)
		}
		done = append(done, name)
	}

	for _, b := range backups {
		os.Remove(b)
	}
	s.files = make(map[string]string)
	if s.onDone != nil {
		s.onDone()
	}
	return nil
}

// Discard removes whatever was not committed.
func (s *staged) Discard() {
	for _, tmp := range s.files {
		os.Remove(tmp)
	}
	s.files = make(map[string]string)
}
