// =============================================================================
// Election Results Verifier - Variant Selector
// =============================================================================
//
// Every results file is governed by one rule-set variant, chosen from tags in
// its filename. Selection is ordered and the first match wins:
//
//   1. "general"              -> GeneralPrecinctFile if "precinct", else GeneralFile
//   2. "primary"              -> PrimaryPrecinctFile if "precinct", else PrimaryFile
//   3. "special" + "precinct" -> SpecialPrecinctFile
//   4. anything else          -> ErrUnrecognizedFile
//
// Files whose name contains "matrix" are excluded from verification entirely
// and report ErrMatrixFile before any other tag is considered.
//
// All checks are case-sensitive and run against the base filename only.
//
// =============================================================================

package validation

import (
	"errors"
	"path/filepath"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrUnrecognizedFile means the filename encodes no known election-type
	// and granularity combination. Such files are skipped silently.
	ErrUnrecognizedFile = errors.New("filename does not encode a verifiable election type")

	// ErrMatrixFile means the file is a matrix results file, which is never verified.
	ErrMatrixFile = errors.New("matrix files are not verified")
)

// =============================================================================
// VARIANT
// =============================================================================

// Variant identifies the rule set that governs a file.
type Variant int

const (
	VariantNone Variant = iota
	VariantGeneral
	VariantGeneralPrecinct
	VariantPrimary
	VariantPrimaryPrecinct
	VariantSpecialPrecinct
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantGeneral:
		return "GeneralFile"
	case VariantGeneralPrecinct:
		return "GeneralPrecinctFile"
	case VariantPrimary:
		return "PrimaryFile"
	case VariantPrimaryPrecinct:
		return "PrimaryPrecinctFile"
	case VariantSpecialPrecinct:
		return "SpecialPrecinctFile"
	default:
		return "None"
	}
}

// PartyPolicy decides when a row must carry a party.
type PartyPolicy int

const (
	// PartyUnlessPseudocandidate requires a party on every row except those
	// whose candidate is an exact pseudocandidate.
	PartyUnlessPseudocandidate PartyPolicy = iota

	// PartyEveryRow requires a party on every row. Primary results are
	// always partisan.
	PartyEveryRow
)

// PartyPolicy returns the party rule the variant applies.
func (v Variant) PartyPolicy() PartyPolicy {
	switch v {
	case VariantPrimary, VariantPrimaryPrecinct:
		return PartyEveryRow
	default:
		return PartyUnlessPseudocandidate
	}
}

// =============================================================================
// SELECTION
// =============================================================================

// SelectVariant chooses the variant for a file.
//
// PARAMETERS:
//   - name: A filename or path. Only the base name is inspected.
//
// RETURNS:
//   - The selected variant.
//   - ErrMatrixFile or ErrUnrecognizedFile if the file must not be verified.
func SelectVariant(name string) (Variant, error) {
	filename := filepath.Base(name)

	if strings.Contains(filename, "matrix") {
		return VariantNone, ErrMatrixFile
	}

	precinct := strings.Contains(filename, "precinct")

	switch {
	case strings.Contains(filename, "general"):
		if precinct {
			return VariantGeneralPrecinct, nil
		}
		return VariantGeneral, nil

	case strings.Contains(filename, "primary"):
		if precinct {
			return VariantPrimaryPrecinct, nil
		}
		return VariantPrimary, nil

	case strings.Contains(filename, "special") && precinct:
		return VariantSpecialPrecinct, nil
	}

	return VariantNone, ErrUnrecognizedFile
}

// =============================================================================
// RULE SET
// =============================================================================

// RuleSet is the row-level rule configuration for one file: the selected
// variant and the identity its rules compare against. It owns no row data
// and is fixed for the lifetime of the file.
type RuleSet struct {
	Variant  Variant
	Party    PartyPolicy
	Identity FileIdentity
}

// NewRuleSet selects the variant for a file and derives its identity.
//
// RETURNS:
//   - The rule set governing the file.
//   - ErrMatrixFile or ErrUnrecognizedFile if the file must not be verified.
func NewRuleSet(name string) (RuleSet, error) {
	variant, err := SelectVariant(name)
	if err != nil {
		return RuleSet{}, err
	}

	return RuleSet{
		Variant:  variant,
		Party:    variant.PartyPolicy(),
		Identity: DeriveIdentity(filepath.Base(name)),
	}, nil
}
