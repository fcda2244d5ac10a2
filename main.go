// =============================================================================
// Election Results Verifier - Main Entry Point
// =============================================================================
//
// This is the main entry point for the election results verifier CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   verifier verify <file.csv>...  - Verify results files and print findings
//   verifier serve                 - Verify uploaded results files over HTTP
//   verifier version               - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Verification engine, reporting, configuration
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/election-results-verifier/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
