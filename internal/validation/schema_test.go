package validation

import (
	"reflect"
	"testing"
)

var standardHeader = []string{"county", "precinct", "office", "district", "party", "candidate", "votes"}

func TestCheckColumns(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		wantInvalid []string
		wantMissing []string
	}{
		{
			name:    "standard header",
			columns: standardHeader,
		},
		{
			name:    "notes is optional",
			columns: append(append([]string{}, standardHeader...), "notes"),
		},
		{
			name:        "unknown columns are sorted",
			columns:     append(append([]string{}, standardHeader...), "total_votes", "Zeta"),
			wantInvalid: []string{"Zeta", "total_votes"},
		},
		{
			name:        "missing district",
			columns:     []string{"county", "precinct", "office", "party", "candidate", "votes"},
			wantMissing: []string{"district"},
		},
		{
			name:        "column names are case-sensitive",
			columns:     []string{"County", "precinct", "office", "district", "party", "candidate", "votes"},
			wantInvalid: []string{"County"},
			wantMissing: []string{"county"},
		},
		{
			name:        "empty header",
			columns:     nil,
			wantMissing: []string{"candidate", "county", "district", "office", "party", "precinct", "votes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := CheckColumns(tt.columns)

			if len(check.Invalid) != len(tt.wantInvalid) || (len(tt.wantInvalid) > 0 && !reflect.DeepEqual(check.Invalid, tt.wantInvalid)) {
				t.Errorf("expected invalid %v, got %v", tt.wantInvalid, check.Invalid)
			}
			if len(check.Missing) != len(tt.wantMissing) || (len(tt.wantMissing) > 0 && !reflect.DeepEqual(check.Missing, tt.wantMissing)) {
				t.Errorf("expected missing %v, got %v", tt.wantMissing, check.Missing)
			}
			if check.OK() != (len(tt.wantMissing) == 0) {
				t.Errorf("expected OK %v, got %v", len(tt.wantMissing) == 0, check.OK())
			}
		})
	}
}

func TestVerifyColumns(t *testing.T) {
	t.Run("invalid columns warn only", func(t *testing.T) {
		sink := &collector{}
		ok := VerifyColumns(append(append([]string{}, standardHeader...), "turnout"), sink)

		if !ok {
			t.Error("expected verification to proceed")
		}
		assertMessages(t, sink, "Invalid columns: turnout")
	})

	t.Run("declared names are not trimmed", func(t *testing.T) {
		sink := &collector{}
		columns := append([]string{" county"}, standardHeader[1:]...)

		if VerifyColumns(columns, sink) {
			t.Error("expected verification to stop")
		}
		assertMessages(t, sink,
			`Invalid columns: " county"`,
			"Missing columns: county",
		)
	})

	t.Run("trailing comma declares an empty column", func(t *testing.T) {
		sink := &collector{}

		if !VerifyColumns(append(append([]string{}, standardHeader...), ""), sink) {
			t.Error("expected verification to proceed")
		}
		assertMessages(t, sink, `Invalid columns: ""`)
	})

	t.Run("missing columns stop verification", func(t *testing.T) {
		sink := &collector{}
		ok := VerifyColumns([]string{"county", "office", "candidate", "votes", "extra"}, sink)

		if ok {
			t.Error("expected verification to stop")
		}
		assertMessages(t, sink,
			"Invalid columns: extra",
			"Missing columns: district, party, precinct",
		)
		for _, f := range sink.findings {
			if f.Row != nil {
				t.Errorf("expected file-level finding without a row, got %v", f.Row)
			}
		}
	})
}

func TestRulesReturnsCopies(t *testing.T) {
	v := Rules()
	if len(v.Offices) != 9 || len(v.RequiredColumns) != 7 || len(v.Pseudocandidates) != 4 {
		t.Fatalf("unexpected vocabulary sizes %+v", v)
	}

	v.Offices[0] = "Mayor"
	if !validOffices.Has("President") || Rules().Offices[0] != "President" {
		t.Error("expected Rules to return copies")
	}
}
