// =============================================================================
// Election Results Verifier - Fuzzy Token Matcher
// =============================================================================
//
// This module provides the approximate string comparison used to catch
// near-misses of reserved vocabulary, such as "wrtie in" for "Write-in".
//
// ALGORITHM:
//   The similarity of two strings is the length of their longest common
//   contiguous substring (a matching block), not an edit distance. Two
//   strings that share a long enough run of characters are considered a
//   probable misspelling of one another.
//
//   Blocks are found with difflib's SequenceMatcher over the runes of each
//   string. No junk function is used, but difflib's popularity heuristic
//   still applies when the second string has 200 runes or more.
//
// NORMALIZATION:
//   None. Callers strip and case-fold their inputs before comparing.
//
// =============================================================================

package fuzzy

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// =============================================================================
// MATCH RESULT
// =============================================================================

// Match describes the longest common block found between two strings.
// A and B are rune offsets into the first and second input; Size is the
// block length in runes. A zero Size means the strings share nothing.
type Match struct {
	A    int
	B    int
	Size int
}

// =============================================================================
// MATCHING FUNCTIONS
// =============================================================================

// LongestMatch finds the longest contiguous block of runes common to a and b.
//
// When several blocks share the maximal length, the one that starts earliest
// in a is returned, and of those the one that starts earliest in b.
func LongestMatch(a, b string) Match {
	if a == "" || b == "" {
		return Match{}
	}

	// strings.Split with an empty separator yields one element per rune.
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))

	// Blocks come back ordered by offset in a and end with a zero-size
	// sentinel, so the first block of maximal size is the earliest one.
	var best Match
	for _, block := range matcher.GetMatchingBlocks() {
		if block.Size > best.Size {
			best = Match{A: block.A, B: block.B, Size: block.Size}
		}
	}

	return best
}

// LongestCommonSubstring returns the length of the longest contiguous
// substring shared by a and b.
func LongestCommonSubstring(a, b string) int {
	return LongestMatch(a, b).Size
}

// Exceeds reports whether a and b share a contiguous block strictly longer
// than threshold runes.
func Exceeds(a, b string, threshold int) bool {
	return LongestCommonSubstring(a, b) > threshold
}
