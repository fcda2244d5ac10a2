// =============================================================================
// Election Results Verifier - Version Command
// =============================================================================
//
// This file defines the 'version' command. Besides the build information it
// lists the rule vocabulary compiled into this build, so a report can be
// traced back to the exact offices, columns and pseudocandidates it was
// checked against.
//
// COMMAND USAGE:
//   verifier version [--rules]
//
// OUTPUT:
//   verifier 1.0.0 (built unknown, go1.24.11)
//
//   with --rules:
//   Required columns:  county, precinct, office, district, party, candidate, votes
//   Optional columns:  notes
//   Offices:           President, U.S. Senate, ...
//   District offices:  U.S. House, State Senate, State House
//   Pseudocandidates:  Write-in, Under Votes, Over Votes, Total
//   Fuzzy threshold:   > 4 characters
//   District "x":      accepted for state "ms" only
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ginjaninja78/election-results-verifier/internal/validation"
	"github.com/spf13/cobra"
)

// Version and BuildDate are set at build time:
//   go build -ldflags "-X 'github.com/ginjaninja78/election-results-verifier/cmd.Version=1.0.0'"
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

// showRules adds the rule vocabulary to the version output.
var showRules bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version and the rule vocabulary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), showRules)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(
		&showRules,
		"rules",
		false,
		"Also list the columns, offices and pseudocandidates checked",
	)
}

// writeVersion writes the build line and, when rules is set, the vocabulary.
func writeVersion(w io.Writer, rules bool) error {
	var errs []error
	printf := func(format string, args ...any) {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			errs = append(errs, err)
		}
	}

	printf("verifier %s (built %s, %s)\n", Version, BuildDate, runtime.Version())

	if rules {
		v := validation.Rules()
		printf("Required columns:  %s\n", strings.Join(v.RequiredColumns, ", "))
		printf("Optional columns:  %s\n", strings.Join(v.OptionalColumns, ", "))
		printf("Offices:           %s\n", strings.Join(v.Offices, ", "))
		printf("District offices:  %s\n", strings.Join(v.DistrictOffices, ", "))
		printf("Pseudocandidates:  %s\n", strings.Join(v.Pseudocandidates, ", "))
		printf("Fuzzy threshold:   > %d characters\n", v.FuzzyThreshold)
		printf("District \"x\":      accepted for state %q only\n", v.PlaceholderState)
	}

	return errors.Join(errs...)
}
