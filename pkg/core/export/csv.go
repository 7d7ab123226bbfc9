package export

import (
	"context"
	"encoding/csv"
	"fmt"

	"github.com/ternarybob/arbor"

	"fin_metrics/pkg/core/pipeline"
	"fin_metrics/pkg/models"
)

// CSVFile is the file name of each table under the entity directory.
var CSVFile = map[models.TableKind]string{
	models.TableLTM:    "ltm_metrics.csv",
	models.TableAnnual: "annual_metrics.csv",
}

// CSVSink writes <root>/<entity>/ltm_metrics.csv and annual_metrics.csv.
type CSVSink struct {
	root   string
	logger arbor.ILogger
}

func NewCSVSink(root string, logger arbor.ILogger) *CSVSink {
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &CSVSink{root: root, logger: logger}
}

func (s *CSVSink) Name() string { return "csv" }

// Prepare implements pipeline.Sink. Both tables are staged; nothing is visible until commit.
func (s *CSVSink) Prepare(ctx context.Context, result *pipeline.EntityResult) (pipeline.Pending, error) {
	dir, err := entityDir(s.root, result.Entity)
	if err != nil {
		return nil, err
	}
	st := newStaged(dir)
	if err := s.stage(ctx, st, result); err != nil {
		st.Discard()
		return nil, err
	}
	st.onDone = func() {
		s.logger.Debug().Str("entity", result.Entity).Str("dir", dir).Msg("Wrote CSV tables")
	}
	return st, nil
}

func (s *CSVSink) stage(ctx context.Context, st *staged, result *pipeline.EntityResult) error {
	for _, kind := range Tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := result.Table(kind)
		if f == nil {
			return fmt.Errorf("missing %s table", kind)
		}
		out, err := st.create(CSVFile[kind])
		if err != nil {
			return err
		}
		w := csv.NewWriter(out)
		w.Write(Header(f))
		w.WriteAll(Records(f))
		if err := w.Error(); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", CSVFile[kind], err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", CSVFile[kind], err)
		}
	}
	return nil
}
