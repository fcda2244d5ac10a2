package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
	"github.com/xuri/excelize/v2"
)

func sampleRow() *types.Row {
	return &types.Row{
		Header: []string{"county", "office", "votes"},
		Fields: map[string]string{"county": "Adams", "office": "Mayor", "votes": "12"},
		Line:   7,
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf)

	text.BeginFile("data/20161108__ms__general__adams__precinct.csv")
	text.Report(types.Finding{Message: "Missing columns: district"})
	text.Report(types.Finding{Message: "Invalid office: Mayor", Row: sampleRow()})

	want := "==> data/20161108__ms__general__adams__precinct.csv\n" +
		"ERROR: Missing columns: district\n" +
		"ERROR: Invalid office: Mayor\n" +
		"{county: Adams, office: Mayor, votes: 12}\n"

	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFanout(t *testing.T) {
	var a, b bytes.Buffer
	fan := Fanout{NewText(&a), NewText(&b)}

	fan.BeginFile("x.csv")
	fan.Report(types.Finding{Message: "Party missing"})

	if a.String() != b.String() || a.Len() == 0 {
		t.Errorf("expected identical output, got %q and %q", a.String(), b.String())
	}
}

func TestWorkbook(t *testing.T) {
	wb, err := NewWorkbook()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer wb.Close()

	wb.BeginFile("a.csv")
	wb.Report(types.Finding{Message: "Missing columns: district"})
	wb.BeginFile("b.csv")
	wb.Report(types.Finding{Message: "Invalid office: Mayor", Row: sampleRow()})

	if wb.Count() != 2 {
		t.Errorf("expected 2 findings, got %d", wb.Count())
	}

	path := filepath.Join(t.TempDir(), "findings.xlsx")
	if err := wb.Save(path); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}

	want := [][]string{
		{"File", "Line", "Message", "Row"},
		{"a.csv", "", "Missing columns: district"},
		{"b.csv", "7", "Invalid office: Mayor", "{county: Adams, office: Mayor, votes: 12}"},
	}

	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i := range want {
		if len(rows[i]) != len(want[i]) {
			t.Errorf("row %d: expected %v, got %v", i, want[i], rows[i])
			continue
		}
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d col %d: expected %q, got %q", i, j, want[i][j], rows[i][j])
			}
		}
	}
}
