// =============================================================================
// Election Results Verifier - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser  (produces rows)
//   - validation (checks rows, emits findings)
//   - report     (writes findings)
//
// =============================================================================

package types

import (
	"strings"
)

// =============================================================================
// ROW
// =============================================================================

// Row is a single CSV record.
// Rows are read-only inputs to the rule engine and are never mutated.
type Row struct {
	// Header holds the column names in file order.
	// It is shared between all rows of a file and is used for printing.
	Header []string

	// Fields maps a column name to its raw value.
	Fields map[string]string

	// Line is the 1-based line number of the record in the source file.
	// Zero when unknown.
	Line int
}

// Get returns the value of a column, or "" if the column is absent.
func (r Row) Get(column string) string {
	return r.Fields[column]
}

// String renders the row as a field mapping in header order.
// Example: {county: Adams, office: President, votes: 12}
func (r Row) String() string {
	var b strings.Builder
	b.WriteByte('{')

	for i, column := range r.Header {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(column)
		b.WriteString(": ")
		b.WriteString(r.Fields[column])
	}

	b.WriteByte('}')
	return b.String()
}

// =============================================================================
// FINDING
// =============================================================================

// Finding is a single advisory validation message.
// Findings carry no severity: every finding is an equal-weight warning.
type Finding struct {
	// Message is the human-readable description of the violation.
	Message string

	// Row is a snapshot of the offending row, or nil for file-level findings
	// such as schema problems.
	Row *Row
}
