package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/election-results-verifier/internal/csvparser"
	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

func parse(t *testing.T, content string) *csvparser.StreamingParser {
	t.Helper()

	parser, err := csvparser.NewStreamingParser(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	return parser
}

func TestVerify(t *testing.T) {
	content := strings.Join([]string{
		"county,precinct,office,district,party,candidate,votes,notes",
		"Adams,1,President,,DEM,Hillary Clinton,120,",
		"Adams,1,President,,,Write-in,3,",
		"adams,2,Mayor,,REP,Joe Bloggs,40,",
		"Adams,2,U.S. House,,REP,Trent Kelly,88,",
		"Adams,2,State House,x,REP,WriteIn,5,",
	}, "\n") + "\n"

	sink := &collector{}
	v, err := New("data/"+generalFile, sink, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := v.Verify(parse(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertMessages(t, sink,
		"Use title case for the county",
		"Invalid office: Mayor",
		"Office 'U.S. House' requires a district",
		"Misspelled pseudocandidate: 'WriteIn'",
	)

	if result.Path != "data/"+generalFile {
		t.Errorf("expected path %q, got %q", "data/"+generalFile, result.Path)
	}
	if result.Variant != VariantGeneralPrecinct {
		t.Errorf("expected %s, got %s", VariantGeneralPrecinct, result.Variant)
	}
	if !result.SchemaOK {
		t.Error("expected schema to pass")
	}
	if result.Rows != 5 {
		t.Errorf("expected 5 rows, got %d", result.Rows)
	}
	if result.Findings != 4 {
		t.Errorf("expected 4 findings, got %d", result.Findings)
	}

	if line := sink.findings[1].Row.Line; line != 4 {
		t.Errorf("expected finding on line 4, got %d", line)
	}
}

func TestVerifyMissingColumnsSkipsRows(t *testing.T) {
	content := "county,precinct,office,party,candidate,votes\n" +
		"amite,1,Mayor,,WriteIn,1\n" +
		"jones,2,Dogcatcher,,Totals,2\n"

	sink := &collector{}
	v, err := New(generalFile, sink, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := v.Verify(parse(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertMessages(t, sink, "Missing columns: district")

	if result.SchemaOK {
		t.Error("expected schema to fail")
	}
	if result.Rows != 0 {
		t.Errorf("expected no rows checked, got %d", result.Rows)
	}
	if result.Findings != 1 {
		t.Errorf("expected 1 finding, got %d", result.Findings)
	}
}

func TestVerifyInvalidColumnsContinue(t *testing.T) {
	content := "county,precinct,office,district,party,candidate,votes,turnout\n" +
		"Adams,1,Governor,,,Phil Bryant,10,55\n"

	sink := &collector{}
	v, err := New(generalFile, sink, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := v.Verify(parse(t, content)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertMessages(t, sink, "Invalid columns: turnout", "Party missing")
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		opts     Options
		wantErr  error
	}{
		{"matrix", "20161108__ms__general__precinct_matrix.csv", Options{}, ErrMatrixFile},
		{"unrecognized", "20161108__ms__runoff__adams__precinct.csv", Options{}, ErrUnrecognizedFile},
		{"strict rejects unstructured", "general__precinct.csv", Options{StrictFilenames: true}, ErrFilenameShape},
		{"lenient accepts unstructured", "general__precinct.csv", Options{}, nil},
		{"strict accepts structured", generalFile, Options{StrictFilenames: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.filename, &collector{}, tt.opts)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && v == nil {
				t.Fatal("expected a verifier")
			}
		})
	}
}

// failingSource yields its rows and then reports err.
type failingSource struct {
	rows []types.Row
	pos  int
	err  error
}

func (s *failingSource) Headers() []string { return standardHeader }

func (s *failingSource) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

func (s *failingSource) Row() types.Row { return s.rows[s.pos-1] }

func (s *failingSource) Err() error { return s.err }

func TestVerifyReadError(t *testing.T) {
	readErr := errors.New("unexpected EOF")
	src := &failingSource{
		rows: []types.Row{newRow(nil), newRow(map[string]string{"office": "Mayor"})},
		err:  readErr,
	}

	sink := &collector{}
	v, err := New(generalFile, sink, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := v.Verify(src)
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if result.Rows != 2 {
		t.Errorf("expected 2 rows before the error, got %d", result.Rows)
	}
	assertMessages(t, sink, "Invalid office: Mayor")
}

func TestVerifyTrailingCommaHeader(t *testing.T) {
	content := "county,precinct,office,district,party,candidate,votes,\n" +
		"Adams,1,President,,DEM,Jane Doe,5,\n"

	sink := &collector{}
	v, err := New(generalFile, sink, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := v.Verify(parse(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertMessages(t, sink, `Invalid columns: ""`)
	if !result.SchemaOK || result.Rows != 1 {
		t.Errorf("expected one checked row, got %+v", result)
	}
}
