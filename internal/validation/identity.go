// =============================================================================
// Election Results Verifier - Filename Metadata Extractor
// =============================================================================
//
// Results files follow a structured naming convention of five components
// joined by a double underscore:
//
//   {date}__{state}__{election-type}__{county}__{granularity}.csv
//   20161108__ms__general__jefferson_davis__precinct.csv
//
// From a conforming name the extractor derives the state code (component 1,
// verbatim) and the county name (component 3, underscores replaced by spaces,
// title-cased). Any other shape yields empty state and county values.
//
// =============================================================================

package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilenameDelimiter separates the components of a structured filename.
const FilenameDelimiter = "__"

// filenameComponents is the number of components in a structured filename.
const filenameComponents = 5

// =============================================================================
// ELECTION TYPE
// =============================================================================

// ElectionType is the kind of election a results file reports.
type ElectionType int

const (
	// ElectionUnknown is used when the filename carries no election-type tag.
	ElectionUnknown ElectionType = iota
	ElectionGeneral
	ElectionPrimary
	ElectionSpecial
)

// String returns the filename tag for the election type.
func (e ElectionType) String() string {
	switch e {
	case ElectionGeneral:
		return "general"
	case ElectionPrimary:
		return "primary"
	case ElectionSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// =============================================================================
// FILE IDENTITY
// =============================================================================

// FileIdentity is the metadata derived once from a results filename.
// It is immutable after construction.
type FileIdentity struct {
	// Filename is the base name the identity was derived from.
	Filename string

	// StateCode is component 1 of a structured filename, verbatim.
	// Empty if the filename is not structured.
	StateCode string

	// CountyName is component 3 of a structured filename, with underscores
	// replaced by spaces and title-cased. Empty if the filename is not structured.
	CountyName string

	// ElectionType is taken from the election-type tag in the filename.
	ElectionType ElectionType

	// IsPrecinctLevel is true when the filename carries the "precinct" tag.
	IsPrecinctLevel bool
}

// DeriveIdentity builds the FileIdentity for a base filename.
//
// PARAMETERS:
//   - filename: The base name of the results file (not the full path).
//
// RETURNS:
//   - The derived identity. StateCode and CountyName are both empty unless
//     the name splits into exactly five components.
func DeriveIdentity(filename string) FileIdentity {
	id := FileIdentity{
		Filename:        filename,
		ElectionType:    electionTypeOf(filename),
		IsPrecinctLevel: strings.Contains(filename, "precinct"),
	}

	components := strings.Split(filename, FilenameDelimiter)
	if len(components) == filenameComponents {
		id.StateCode = components[1]
		id.CountyName = TitleCase(strings.ReplaceAll(components[3], "_", " "))
	}

	return id
}

// Structured reports whether the identity was derived from a conforming
// five-component filename.
func (id FileIdentity) Structured() bool {
	return len(strings.Split(id.Filename, FilenameDelimiter)) == filenameComponents
}

// electionTypeOf reads the election-type tag with the same precedence the
// variant selector uses.
func electionTypeOf(filename string) ElectionType {
	switch {
	case strings.Contains(filename, "general"):
		return ElectionGeneral
	case strings.Contains(filename, "primary"):
		return ElectionPrimary
	case strings.Contains(filename, "special"):
		return ElectionSpecial
	default:
		return ElectionUnknown
	}
}

// =============================================================================
// TITLE CASE
// =============================================================================

// TitleCase capitalizes every letter that does not follow another letter and
// lower-cases the rest, regardless of the input's case. Any non-letter starts
// a new word, so "DE KALB" becomes "De Kalb", "o'brien" becomes "O'Brien" and
// "prince george's" becomes "Prince George'S".
func TitleCase(s string) string {
	// Casers hold state, so they are created per call.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		end := i + 1
		for end < len(runes) && unicode.IsLetter(runes[end]) {
			end++
		}

		b.WriteString(upper.String(string(runes[i])))
		b.WriteString(lower.String(string(runes[i+1 : end])))
		i = end
	}

	return b.String()
}
