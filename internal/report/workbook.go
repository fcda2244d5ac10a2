package report

// workbook.go collects findings into an XLSX workbook.
//
// The workbook has a single sheet, "Findings", with one row per finding:
//
//   | File | Line | Message | Row |
//
// Line and Row are empty for file-level findings such as schema problems.

import (
	"fmt"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the findings sheet.
const SheetName = "Findings"

var workbookHeader = []interface{}{"File", "Line", "Message", "Row"}

// Workbook accumulates findings into an XLSX workbook.
// Call Save to write it and Close to release it.
type Workbook struct {
	file    *excelize.File
	current string
	nextRow int
	count   int
	err     error
}

// NewWorkbook creates an empty findings workbook with its header row.
func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name findings sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &workbookHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		err = f.SetCellStyle(SheetName, "A1", "D1", style)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	if err := f.SetColWidth(SheetName, "A", "A", 48); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "C", "C", 56); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	return &Workbook{
		file:    f,
		nextRow: 2,
	}, nil
}

// BeginFile sets the file name recorded with subsequent findings.
func (w *Workbook) BeginFile(path string) {
	w.current = path
}

// Report appends one finding row. The first write error is kept and
// returned by Save.
func (w *Workbook) Report(f types.Finding) {
	if w.err != nil {
		return
	}

	values := []interface{}{w.current, "", f.Message, ""}
	if f.Row != nil {
		if f.Row.Line > 0 {
			values[1] = f.Row.Line
		}
		values[3] = f.Row.String()
	}

	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		w.err = err
		return
	}

	if err := w.file.SetSheetRow(SheetName, cell, &values); err != nil {
		w.err = fmt.Errorf("failed to write finding row %d: %w", w.nextRow, err)
		return
	}

	w.nextRow++
	w.count++
}

// Count returns the number of findings written.
func (w *Workbook) Count() int {
	return w.count
}

// Save writes the workbook to path.
func (w *Workbook) Save(path string) error {
	if w.err != nil {
		return w.err
	}

	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save findings workbook: %w", err)
	}

	return nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}
