// =============================================================================
// Election Results Verifier - Row Rule Set
// =============================================================================
//
// Each row is checked independently by five rules, in this order:
//
//   1. County     : matches the filename county; written in title case
//   2. Office     : one of the recognized offices
//   3. District   : present and numeric for offices that need one
//   4. Candidate  : not a misspelling of a pseudocandidate
//   5. Party      : present, subject to the variant's PartyPolicy
//
// Rules keep no state between rows. Every violation is reported to the sink
// as an advisory finding carrying a snapshot of the row.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/election-results-verifier/internal/fuzzy"
	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

// =============================================================================
// ROW ENTRY POINT
// =============================================================================

// CheckRow applies every row rule to row and reports violations to sink.
func (rs RuleSet) CheckRow(row types.Row, sink Sink) {
	rs.checkCounty(row, sink)
	rs.checkOffice(row, sink)
	rs.checkDistrict(row, sink)
	rs.checkCandidate(row, sink)
	rs.checkParty(row, sink)
}

// report emits a finding carrying a snapshot of the row.
func report(sink Sink, row types.Row, format string, args ...any) {
	snapshot := row
	sink.Report(types.Finding{
		Message: fmt.Sprintf(format, args...),
		Row:     &snapshot,
	})
}

// =============================================================================
// COUNTY
// =============================================================================

// checkCounty compares the title-cased county with the filename county and
// separately lints the raw value for title case. Both may fire on one row.
//
// For filenames without a county component the expected value is empty, so
// every row with a county reports a mismatch.
func (rs RuleSet) checkCounty(row types.Row, sink Sink) {
	county := row.Get("county")
	normalized := TitleCase(county)

	if normalized != rs.Identity.CountyName {
		report(sink, row, "County doesn't match filename")
	}

	if county != normalized {
		report(sink, row, "Use title case for the county")
	}
}

// =============================================================================
// OFFICE
// =============================================================================

func (rs RuleSet) checkOffice(row types.Row, sink Sink) {
	office := row.Get("office")

	if !validOffices.Has(office) {
		report(sink, row, "Invalid office: %s", office)
	}
}

// =============================================================================
// DISTRICT
// =============================================================================

// checkDistrict only applies to offices in districtOffices. The placeholder
// district "x" (any case) is accepted in Mississippi files only.
func (rs RuleSet) checkDistrict(row types.Row, sink Sink) {
	office := row.Get("office")
	if !districtOffices.Has(office) {
		return
	}

	district := row.Get("district")

	switch {
	case district == "":
		report(sink, row, "Office '%s' requires a district", office)

	case strings.ToLower(district) == placeholderDistrict:
		if rs.Identity.StateCode != placeholderDistrictState {
			report(sink, row, "District must be an integer")
		}

	case !isInteger(district):
		report(sink, row, "District must be an integer")
	}
}

// isInteger reports whether s parses as a base-10 integer. Surrounding
// whitespace and a leading sign are accepted.
func isInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err == nil {
		return true
	}

	// Values beyond int64 are still integers.
	return errors.Is(err, strconv.ErrRange)
}

// =============================================================================
// CANDIDATE
// =============================================================================

// NormalizeCandidate strips every rune that is not an ASCII letter and
// lower-cases the rest. "Write-In" and "write in" both become "writein".
func NormalizeCandidate(candidate string) string {
	var b strings.Builder
	b.Grow(len(candidate))

	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}

	return b.String()
}

// IsMisspelledPseudocandidate reports whether candidate looks like a
// pseudocandidate without being spelled exactly as one.
func IsMisspelledPseudocandidate(candidate string) bool {
	if IsPseudocandidate(candidate) {
		return false
	}

	normalized := NormalizeCandidate(candidate)

	if normalizedPseudoSet.Has(normalized) {
		return true
	}

	for _, token := range normalizedPseudocandidates {
		if fuzzy.Exceeds(normalized, token, FuzzyThreshold) {
			return true
		}
	}

	return false
}

func (rs RuleSet) checkCandidate(row types.Row, sink Sink) {
	candidate := row.Get("candidate")

	if IsMisspelledPseudocandidate(candidate) {
		report(sink, row, "Misspelled pseudocandidate: '%s'", candidate)
	}
}

// =============================================================================
// PARTY
// =============================================================================

func (rs RuleSet) checkParty(row types.Row, sink Sink) {
	if row.Get("party") != "" {
		return
	}

	switch rs.Party {
	case PartyEveryRow:
		report(sink, row, "Party missing: primary results must include a party for every row")
	default:
		if !IsPseudocandidate(row.Get("candidate")) {
			report(sink, row, "Party missing")
		}
	}
}
