package export

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/xuri/excelize/v2"

	"fin_metrics/pkg/core/frame"
	"fin_metrics/pkg/core/pipeline"
	"fin_metrics/pkg/models"
)

// WorkbookFile is the workbook name under the entity directory.
const WorkbookFile = "metrics.xlsx"

// SheetName maps each table to its worksheet.
var SheetName = map[models.TableKind]string{
	models.TableLTM:    "LTM",
	models.TableAnnual: "Annual",
}

// BuildWorkbook renders the given tables, one sheet each in export order. Unknown cells
// are left empty. Missing tables are skipped.
func BuildWorkbook(tables map[models.TableKind]*frame.Frame) (*excelize.File, error) {
	wb := excelize.NewFile()
	first := true
	for _, kind := range Tables {
		f := tables[kind]
		if f == nil {
			continue
		}
		sheet := SheetName[kind]
		if first {
			if err := wb.SetSheetName("Sheet1", sheet); err != nil {
				wb.Close()
				return nil, err
			}
			first = false
		} else if _, err := wb.NewSheet(sheet); err != nil {
			wb.Close()
			return nil, err
		}
		if err := writeSheet(wb, sheet, f); err != nil {
			wb.Close()
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	if first {
		wb.Close()
		return nil, fmt.Errorf("no tables to export")
	}
	if idx, err := wb.GetSheetIndex(SheetName[models.TableLTM]); err == nil && idx >= 0 {
		wb.SetActiveSheet(idx)
	}
	return wb, nil
}

func writeSheet(wb *excelize.File, sheet string, f *frame.Frame) error {
	header := Header(f)
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := wb.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}

	cols := f.Columns()
	for i, p := range f.Periods() {
		row := make([]interface{}, 0, len(cols)+1)
		row = append(row, p.Format("2006-01-02"))
		for _, name := range cols {
			if v, ok := f.Cell(name, i).Value(); ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := wb.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return err
	}
	return wb.SetColWidth(sheet, "A", "A", 12)
}

// XLSXSink writes <root>/<entity>/metrics.xlsx with one sheet per table.
type XLSXSink struct {
	root   string
	logger arbor.ILogger
}

func NewXLSXSink(root string, logger arbor.ILogger) *XLSXSink {
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &XLSXSink{root: root, logger: logger}
}

func (s *XLSXSink) Name() string { return "xlsx" }

// Prepare implements pipeline.Sink. The workbook is staged; nothing is visible until commit.
func (s *XLSXSink) Prepare(ctx context.Context, result *pipeline.EntityResult) (pipeline.Pending, error) {
	if result.LTM == nil || result.Annual == nil {
		return nil, fmt.Errorf("incomplete result for %s", result.Entity)
	}
	wb, err := BuildWorkbook(map[models.TableKind]*frame.Frame{
		models.TableLTM:    result.LTM,
		models.TableAnnual: result.Annual,
	})
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := entityDir(s.root, result.Entity)
	if err != nil {
		return nil, err
	}
	st := newStaged(dir)
	out, err := st.create(WorkbookFile)
	if err != nil {
		return nil, err
	}
	if _, err := wb.WriteTo(out); err != nil {
		out.Close()
		st.Discard()
		return nil, fmt.Errorf("write %s: %w", WorkbookFile, err)
	}
	if err := out.Close(); err != nil {
		st.Discard()
		return nil, fmt.Errorf("close %s: %w", WorkbookFile, err)
	}
	st.onDone = func() {
		s.logger.Debug().Str("entity", result.Entity).Str("dir", dir).Msg("Wrote workbook")
	}
	return st, nil
}
