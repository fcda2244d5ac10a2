package validation

// schema.go gates row-level verification on the declared header.
//
// Unknown columns are reported but tolerated. Missing required columns are
// reported and stop row verification for the file.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

// Sink receives findings in emission order.
type Sink interface {
	Report(f types.Finding)
}

// SchemaCheck is the outcome of checking a header.
type SchemaCheck struct {
	Invalid []string // Declared columns outside the valid set, sorted
	Missing []string // Required columns not declared, sorted
}

// OK reports whether row-level verification may proceed.
func (c SchemaCheck) OK() bool {
	return len(c.Missing) == 0
}

// CheckColumns compares a declared header against the valid and required
// column sets. It does not report anything.
func CheckColumns(columns []string) SchemaCheck {
	declared := newStringSet(columns...)

	invalid := make(stringSet)
	for _, c := range columns {
		if !validColumns.Has(c) {
			invalid[c] = struct{}{}
		}
	}

	missing := make(stringSet)
	for c := range requiredColumns {
		if !declared.Has(c) {
			missing[c] = struct{}{}
		}
	}

	return SchemaCheck{
		Invalid: sortedKeys(invalid),
		Missing: sortedKeys(missing),
	}
}

// VerifyColumns checks a header and reports problems to sink.
// It returns false when required columns are missing.
func VerifyColumns(columns []string, sink Sink) bool {
	check := CheckColumns(columns)

	if len(check.Invalid) > 0 {
		sink.Report(types.Finding{
			Message: fmt.Sprintf("Invalid columns: %s", formatColumns(check.Invalid)),
		})
	}

	if len(check.Missing) > 0 {
		sink.Report(types.Finding{
			Message: fmt.Sprintf("Missing columns: %s", formatColumns(check.Missing)),
		})
		return false
	}

	return true
}

// formatColumns joins column names for a finding. Names that are empty or
// carry surrounding whitespace are quoted so they stay visible.
func formatColumns(names []string) string {
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" || name != strings.TrimSpace(name) {
			name = strconv.Quote(name)
		}
		out[i] = name
	}
	return strings.Join(out, ", ")
}
