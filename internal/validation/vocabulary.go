// =============================================================================
// Election Results Verifier - Rule Vocabulary
// =============================================================================
//
// This file holds the fixed vocabularies the rule engine checks against:
//   - Column names (valid and required)
//   - Recognized offices, and those that require a district
//   - Pseudocandidates (reserved candidate names) and their normalized forms
//
// All sets are built once at package initialization and never mutated, so
// they are safe to share between goroutines without synchronization.
//
// =============================================================================

package validation

import (
	"sort"
)

// stringSet is an immutable set of strings.
type stringSet map[string]struct{}

func newStringSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is a member of the set.
func (s stringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// =============================================================================
// COLUMNS
// =============================================================================

// ColumnNotes is the only optional column.
const ColumnNotes = "notes"

// requiredColumnNames lists the columns every results file must declare, in the
// conventional header order.
var requiredColumnNames = []string{
	"county",
	"precinct",
	"office",
	"district",
	"party",
	"candidate",
	"votes",
}

var (
	requiredColumns = newStringSet(requiredColumnNames...)
	validColumns    = newStringSet(append(append([]string{}, requiredColumnNames...), ColumnNotes)...)
)

// =============================================================================
// OFFICES
// =============================================================================

// officeNames lists the recognized office names, exactly as they must appear.
var officeNames = []string{
	"President",
	"U.S. Senate",
	"U.S. House",
	"Governor",
	"State Senate",
	"State House",
	"Attorney General",
	"Secretary of State",
	"State Treasurer",
}

// districtOfficeNames lists the offices whose rows must carry a district.
var districtOfficeNames = []string{
	"U.S. House",
	"State Senate",
	"State House",
}

var (
	validOffices    = newStringSet(officeNames...)
	districtOffices = newStringSet(districtOfficeNames...)
)

// =============================================================================
// PSEUDOCANDIDATES
// =============================================================================

// pseudocandidateNames lists the reserved placeholder names that appear in the
// candidate column for non-candidate tallies.
var pseudocandidateNames = []string{
	"Write-in",
	"Under Votes",
	"Over Votes",
	"Total",
}

// normalizedPseudocandidates holds the normalized forms, in the order they
// are compared by the fuzzy check.
var normalizedPseudocandidates = []string{
	"writein",
	"undervotes",
	"overvotes",
	"total",
}

var (
	pseudocandidates    = newStringSet(pseudocandidateNames...)
	normalizedPseudoSet = newStringSet(normalizedPseudocandidates...)
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// FuzzyThreshold is the block length a normalized candidate must exceed
	// to be reported as a misspelled pseudocandidate.
	FuzzyThreshold = 4

	// placeholderDistrict is the district value Mississippi precinct files
	// use in place of a number.
	placeholderDistrict = "x"

	// placeholderDistrictState is the only state where placeholderDistrict
	// is accepted.
	placeholderDistrictState = "ms"
)

// IsPseudocandidate reports whether name is an exact reserved pseudocandidate.
func IsPseudocandidate(name string) bool {
	return pseudocandidates.Has(name)
}

// sortedKeys returns the members of a set in lexical order.
func sortedKeys(s map[string]struct{}) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// =============================================================================
// VOCABULARY LISTING
// =============================================================================

// Vocabulary is a copy of the fixed rule vocabularies, in their conventional
// order. Changing it has no effect on verification.
type Vocabulary struct {
	RequiredColumns  []string
	OptionalColumns  []string
	Offices          []string
	DistrictOffices  []string
	Pseudocandidates []string
	FuzzyThreshold   int
	PlaceholderState string
}

// Rules returns the vocabularies the rule engine checks against.
func Rules() Vocabulary {
	return Vocabulary{
		RequiredColumns:  append([]string(nil), requiredColumnNames...),
		OptionalColumns:  []string{ColumnNotes},
		Offices:          append([]string(nil), officeNames...),
		DistrictOffices:  append([]string(nil), districtOfficeNames...),
		Pseudocandidates: append([]string(nil), pseudocandidateNames...),
		FuzzyThreshold:   FuzzyThreshold,
		PlaceholderState: placeholderDistrictState,
	}
}
