// =============================================================================
// Election Results Verifier - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (verifier)
//   ├── verifyCmd  (verifier verify)
//   ├── serveCmd   (verifier serve)
//   └── versionCmd (verifier version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --log-format)
//   2. Loading .env and the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/election-results-verifier/internal/config"
	"github.com/ginjaninja78/election-results-verifier/internal/logging"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// logFormat overrides the configured log format when set.
var logFormat string

// cfg is the loaded configuration, available to subcommands after
// PersistentPreRunE.
var cfg *config.Config

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "verifier",
	Short: "Verify election results CSV files",
	Long: `verifier checks election results CSV files against the results naming
convention and schema, and reports rows that break the rules:

  - missing or unknown columns
  - county names that don't match the filename or aren't title-cased
  - unrecognized offices
  - missing or non-numeric districts for district offices
  - misspelled pseudocandidates (Write-in, Under Votes, Over Votes, Total)
  - missing parties

Findings are advisory. The data is never modified.

Example Usage:
  verifier verify 20161108__ms__general__adams__precinct.csv
  verifier verify --xlsx findings.xlsx data/*.csv
  verifier serve --config ./verifier.yaml`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		"Log format: text or json (overrides the configuration)",
	)
}

// initConfig loads .env and the configuration file and sets up logging.
// The configuration file is only required when --config was given explicitly.
func initConfig(cmd *cobra.Command) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}

	loaded, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		loaded.Logging.Level = "debug"
	}
	if logFormat != "" {
		loaded.Logging.Format = logFormat
	}

	logging.Setup(loaded.Logging.Level, loaded.Logging.Format)

	cfg = loaded
	return nil
}
