package csvparser

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewStreamingParser(t *testing.T) {
	content := "\uFEFFcounty, office ,,votes\n" +
		"Adams,President,x,10\n" +
		"Amite,\" Governor \"\n" +
		"\n" +
		"Jones,U.S. House,y,3,extra\n"

	parser, err := NewStreamingParser(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantHeaders := []string{"county", " office ", "", "votes"}
	if !reflect.DeepEqual(parser.Headers(), wantHeaders) {
		t.Fatalf("expected headers %v, got %v", wantHeaders, parser.Headers())
	}

	type want struct {
		line   int
		fields map[string]string
	}
	wants := []want{
		{2, map[string]string{"county": "Adams", " office ": "President", "": "x", "votes": "10"}},
		{3, map[string]string{"county": "Amite", " office ": " Governor ", "": "", "votes": ""}},
		{5, map[string]string{"county": "Jones", " office ": "U.S. House", "": "y", "votes": "3"}},
	}

	for i, w := range wants {
		if !parser.Next() {
			t.Fatalf("row %d: expected a row, got end (err: %v)", i, parser.Err())
		}

		row := parser.Row()
		if row.Line != w.line {
			t.Errorf("row %d: expected line %d, got %d", i, w.line, row.Line)
		}
		if !reflect.DeepEqual(row.Fields, w.fields) {
			t.Errorf("row %d: expected fields %v, got %v", i, w.fields, row.Fields)
		}
		if !reflect.DeepEqual(row.Header, wantHeaders) {
			t.Errorf("row %d: expected row header %v, got %v", i, wantHeaders, row.Header)
		}
	}

	if parser.Next() {
		t.Fatal("expected end of input")
	}
	if err := parser.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if parser.RowNumber() != 4 {
		t.Errorf("expected 4 records read, got %d", parser.RowNumber())
	}
	if err := parser.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestNewStreamingParserEmpty(t *testing.T) {
	if _, err := NewStreamingParser(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("county,votes\nAdams,1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	parser, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer parser.Close()

	if !parser.Next() {
		t.Fatalf("expected a row (err: %v)", parser.Err())
	}
	if got := parser.Row().Get("county"); got != "Adams" {
		t.Errorf("expected %q, got %q", "Adams", got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
