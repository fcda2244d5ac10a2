// =============================================================================
// Election Results Verifier - Verify Command
// =============================================================================
//
// This file defines the 'verify' command, which checks one or more results
// CSV files and prints the findings.
//
// COMMAND USAGE:
//   verifier verify [flags] <file.csv>...
//
// FLAGS:
//   --xlsx     : Also write the findings to an XLSX workbook at this path
//   --summary  : Print a per-file summary after the findings
//   --strict   : Skip files whose name lacks the five-component structure
//
// OUTPUT:
//   ==> 20161108__ms__general__adams__precinct.csv
//   ERROR: Invalid office: Mayor
//   {county: Adams, precinct: 1, office: Mayor, ...}
//
// Findings do not change the exit code. Only usage and configuration errors
// produce a non-zero exit.
//
// =============================================================================

package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/ginjaninja78/election-results-verifier/internal/report"
	"github.com/ginjaninja78/election-results-verifier/internal/runner"
	"github.com/ginjaninja78/election-results-verifier/internal/validation"
	"github.com/ginjaninja78/election-results-verifier/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// xlsxPath is the findings workbook path.
var xlsxPath string

// printSummary enables the per-file summary.
var printSummary bool

// strictFilenames overrides verify.strict_filenames when set.
var strictFilenames bool

// =============================================================================
// VERIFY COMMAND DEFINITION
// =============================================================================

var verifyCmd = &cobra.Command{
	Use:   "verify <file.csv>...",
	Short: "Verify election results CSV files",
	Long: `The verify command checks each file in the order given and prints its
findings. Files are verified independently: a file that is missing, is not
a .csv file, or cannot be read is reported and the remaining files are still
verified.

Files whose name does not encode a general, primary, or special precinct
election are skipped silently, as are matrix files.`,

	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("strict") {
			cfg.Verify.StrictFilenames = strictFilenames
		}
		return runVerify(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(
		&xlsxPath,
		"xlsx",
		"",
		"Also write findings to an XLSX workbook at this path",
	)

	verifyCmd.Flags().BoolVar(
		&printSummary,
		"summary",
		false,
		"Print a per-file summary after the findings",
	)

	verifyCmd.Flags().BoolVar(
		&strictFilenames,
		"strict",
		false,
		"Skip files whose name is not date__state__type__county__granularity.csv",
	)
}

// =============================================================================
// MAIN VERIFICATION FUNCTION
// =============================================================================

// runVerify verifies every path and writes the requested reports.
func runVerify(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()

	reporters := report.Fanout{report.NewText(out)}

	workbookPath := xlsxPath
	if workbookPath == "" && cfg.Report.WorkbookDir != "" {
		if err := utils.EnsureDirectory(cfg.Report.WorkbookDir); err != nil {
			return err
		}
		workbookPath = filepath.Join(cfg.Report.WorkbookDir, utils.GenerateReportFileName(cfg.Report.FilenameFormat, nil))
	}

	var workbook *report.Workbook
	if workbookPath != "" {
		wb, err := report.NewWorkbook()
		if err != nil {
			return err
		}
		defer wb.Close()

		workbook = wb
		reporters = append(reporters, wb)
	}

	r := runner.New(reporters, slog.Default(), validation.Options{
		StrictFilenames: cfg.Verify.StrictFilenames,
	})

	summary := r.Run(paths)

	if printSummary {
		if err := runner.WriteSummary(out, summary); err != nil {
			return err
		}
	}

	if workbook != nil {
		if err := workbook.Save(workbookPath); err != nil {
			slog.Error("failed to write findings workbook", "path", workbookPath, "error", err)
			return nil
		}
		slog.Info("findings workbook written", "path", workbookPath, "findings", workbook.Count())
	}

	return nil
}
