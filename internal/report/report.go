// =============================================================================
// Election Results Verifier - Error Reporter
// =============================================================================
//
// This module writes validation findings. Findings are advisory: reporting
// never halts verification, and findings are written in emission order with
// no deduplication and no severity levels.
//
// REPORTERS:
//   - Text     : the human-readable stream ("==> path", "ERROR: message", row)
//   - Workbook : an XLSX workbook with one row per finding
//   - Fanout   : forwards to several reporters at once
//
// TEXT FORMAT:
//   ==> 20161108__ms__general__adams__precinct.csv
//   ERROR: Invalid office: Mayor
//   {county: Adams, precinct: 1, office: Mayor, ...}
//
// =============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

// Reporter receives findings, grouped by file.
type Reporter interface {
	// BeginFile marks the start of the findings for the file at path.
	BeginFile(path string)

	// Report records one finding for the current file.
	Report(f types.Finding)
}

// =============================================================================
// TEXT REPORTER
// =============================================================================

// Text writes findings to a text stream as soon as they are reported.
type Text struct {
	w io.Writer
}

// NewText creates a Text reporter writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// BeginFile writes the file header line.
func (t *Text) BeginFile(path string) {
	fmt.Fprintf(t.w, "==> %s\n", path)
}

// Report writes the finding, followed by the row when there is one.
func (t *Text) Report(f types.Finding) {
	fmt.Fprintf(t.w, "ERROR: %s\n", f.Message)

	if f.Row != nil {
		fmt.Fprintln(t.w, f.Row.String())
	}
}

// =============================================================================
// FANOUT
// =============================================================================

// Fanout forwards every call to each of its reporters in order.
type Fanout []Reporter

// BeginFile forwards to every reporter.
func (f Fanout) BeginFile(path string) {
	for _, r := range f {
		r.BeginFile(path)
	}
}

// Report forwards to every reporter.
func (f Fanout) Report(finding types.Finding) {
	for _, r := range f {
		r.Report(finding)
	}
}
