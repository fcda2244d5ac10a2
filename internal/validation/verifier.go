// =============================================================================
// Election Results Verifier - File Verifier
// =============================================================================
//
// The Verifier drives verification of a single results file:
//
//   1. Select the rule-set variant from the filename (NewRuleSet)
//   2. Derive the file identity (state, county) from the filename
//   3. Check the declared header (VerifyColumns); stop if columns are missing
//   4. Check every row, in read order, with the variant's rules
//
// The Verifier never reads files itself. Rows come from a RowSource, which is
// satisfied by csvparser.StreamingParser.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

// ErrFilenameShape is returned in strict mode for filenames that do not have
// the five-component structure.
var ErrFilenameShape = errors.New("filename does not have the form date__state__type__county__granularity")

// =============================================================================
// ROW SOURCE
// =============================================================================

// RowSource yields the header and rows of one results file.
type RowSource interface {
	Headers() []string
	Next() bool
	Row() types.Row
	Err() error
}

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options controls verification behavior.
type Options struct {
	// StrictFilenames turns a filename without the five-component structure
	// into a setup error instead of verifying against empty state and county.
	StrictFilenames bool
}

// Result summarizes the verification of one file.
type Result struct {
	// Path is the path of the verified file.
	Path string

	// Variant is the rule set that governed the file.
	Variant Variant

	// SchemaOK is false when missing columns stopped row verification.
	SchemaOK bool

	// Rows is the number of rows checked.
	Rows int

	// Findings is the number of findings reported, schema findings included.
	Findings int
}

// =============================================================================
// VERIFIER
// =============================================================================

// Verifier checks one results file against its rule set.
type Verifier struct {
	path  string
	rules RuleSet
	sink  Sink
}

// New prepares a Verifier for the file at path.
//
// PARAMETERS:
//   - path: The path of the results file. Only its base name is inspected.
//   - sink: Receives findings in emission order.
//   - opts: Verification options.
//
// RETURNS:
//   - The Verifier.
//   - ErrMatrixFile or ErrUnrecognizedFile if the file must be skipped,
//     or ErrFilenameShape in strict mode.
func New(path string, sink Sink, opts Options) (*Verifier, error) {
	rules, err := NewRuleSet(path)
	if err != nil {
		return nil, err
	}

	if opts.StrictFilenames && !rules.Identity.Structured() {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrFilenameShape)
	}

	return &Verifier{
		path:  path,
		rules: rules,
		sink:  sink,
	}, nil
}

// Rules returns the rule set governing the file.
func (v *Verifier) Rules() RuleSet {
	return v.rules
}

// Verify checks the header and every row from src.
//
// RETURNS:
//   - The verification result. It is valid even when an error is returned.
//   - An error if src failed while reading rows.
func (v *Verifier) Verify(src RowSource) (Result, error) {
	counter := &countingSink{next: v.sink}

	result := Result{
		Path:    v.path,
		Variant: v.rules.Variant,
	}

	result.SchemaOK = VerifyColumns(src.Headers(), counter)
	if !result.SchemaOK {
		result.Findings = counter.count
		return result, nil
	}

	for src.Next() {
		v.rules.CheckRow(src.Row(), counter)
		result.Rows++
	}

	result.Findings = counter.count

	if err := src.Err(); err != nil {
		return result, fmt.Errorf("failed to read rows: %w", err)
	}

	return result, nil
}

// countingSink forwards findings and counts them.
type countingSink struct {
	next  Sink
	count int
}

func (c *countingSink) Report(f types.Finding) {
	c.count++
	c.next.Report(f)
}
