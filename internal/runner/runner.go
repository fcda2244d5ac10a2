// =============================================================================
// Election Results Verifier - Batch Runner
// =============================================================================
//
// The Runner verifies a list of results files, one at a time and in the order
// given. Failures are isolated per file: a file that cannot be verified is
// reported and the batch moves on.
//
// PER-FILE PIPELINE:
//   1. Select the variant from the filename; unrecognized and matrix files
//      are skipped silently
//   2. Check the path (exists, regular file, .csv); report and skip on error
//   3. Write the file header ("==> path")
//   4. Build the Verifier (strict filename check); report and skip on error
//   5. Stream the rows through the Verifier
//
// =============================================================================

package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/election-results-verifier/internal/csvparser"
	"github.com/ginjaninja78/election-results-verifier/internal/report"
	"github.com/ginjaninja78/election-results-verifier/internal/types"
	"github.com/ginjaninja78/election-results-verifier/internal/validation"
	"github.com/ginjaninja78/election-results-verifier/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Status is the outcome of one file in a batch.
type Status int

const (
	// StatusVerified means the file was verified (findings or not).
	StatusVerified Status = iota

	// StatusSkipped means the file was intentionally not verified.
	StatusSkipped

	// StatusFailed means a file-level error prevented verification.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusVerified:
		return "verified"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// FileResult is the outcome of processing one path.
type FileResult struct {
	Path     string
	Status   Status
	Result   validation.Result
	Err      error
	Duration time.Duration
}

// Summary describes a batch run.
type Summary struct {
	RunID string
	Start time.Time
	End   time.Time
	Files []FileResult
}

// Count returns the number of files with the given status.
func (s Summary) Count(status Status) int {
	n := 0
	for _, f := range s.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Findings returns the total number of findings across the batch.
func (s Summary) Findings() int {
	n := 0
	for _, f := range s.Files {
		n += f.Result.Findings
	}
	return n
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner verifies batches of files.
type Runner struct {
	reporter report.Reporter
	logger   *slog.Logger
	opts     validation.Options
}

// New creates a Runner that reports findings to reporter.
func New(reporter report.Reporter, logger *slog.Logger, opts validation.Options) *Runner {
	return &Runner{
		reporter: reporter,
		logger:   logger,
		opts:     opts,
	}
}

// Run verifies every path in order and returns the batch summary.
func (r *Runner) Run(paths []string) Summary {
	summary := Summary{
		RunID: uuid.NewString(),
		Start: time.Now(),
		Files: make([]FileResult, 0, len(paths)),
	}

	logger := r.logger.With("run_id", summary.RunID)
	logger.Info("verification started", "files", len(paths))

	for _, path := range paths {
		start := time.Now()
		fr := r.verifyFile(path, logger.With("path", path))
		fr.Duration = time.Since(start)
		summary.Files = append(summary.Files, fr)
	}

	summary.End = time.Now()

	logger.Info("verification finished",
		"verified", summary.Count(StatusVerified),
		"skipped", summary.Count(StatusSkipped),
		"failed", summary.Count(StatusFailed),
		"findings", summary.Findings(),
		"elapsed", summary.End.Sub(summary.Start),
	)

	return summary
}

// verifyFile runs the per-file pipeline for one path.
func (r *Runner) verifyFile(path string, logger *slog.Logger) FileResult {
	fr := FileResult{Path: path}

	variant, err := validation.SelectVariant(path)
	if err != nil {
		logger.Debug("file skipped", "reason", err)
		fr.Status = StatusSkipped
		fr.Err = err
		return fr
	}

	if err := utils.CheckInputPath(path); err != nil {
		return r.fail(fr, err, logger)
	}

	r.reporter.BeginFile(path)

	verifier, err := validation.New(path, r.reporter, r.opts)
	if err != nil {
		return r.fail(fr, err, logger)
	}

	parser, err := csvparser.Open(path)
	if err != nil {
		return r.fail(fr, err, logger)
	}
	defer parser.Close()

	logger.Debug("verifying file", "variant", variant)

	fr.Result, err = verifier.Verify(parser)
	if err != nil {
		return r.fail(fr, err, logger)
	}

	fr.Status = StatusVerified
	return fr
}

// fail reports a file-level error and marks the file failed.
func (r *Runner) fail(fr FileResult, err error, logger *slog.Logger) FileResult {
	logger.Debug("file failed", "error", err)
	r.reporter.Report(types.Finding{Message: err.Error()})

	fr.Status = StatusFailed
	fr.Err = err
	return fr
}

// =============================================================================
// SUMMARY OUTPUT
// =============================================================================

// WriteSummary writes a human-readable batch summary to w.
func WriteSummary(w io.Writer, s Summary) error {
	var errs []error
	printf := func(format string, args ...any) {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			errs = append(errs, err)
		}
	}

	printf("\n=== Verification Summary ===\n")
	printf("Run ID:          %s\n", s.RunID)
	printf("Total files:     %d\n", len(s.Files))
	printf("Verified:        %d\n", s.Count(StatusVerified))
	printf("Skipped:         %d\n", s.Count(StatusSkipped))
	printf("Failed:          %d\n", s.Count(StatusFailed))
	printf("Findings:        %d\n", s.Findings())

	for _, f := range s.Files {
		name := filepath.Base(f.Path)
		switch f.Status {
		case StatusVerified:
			printf("  %-9s %s: %d row(s), %d finding(s)\n", f.Status, name, f.Result.Rows, f.Result.Findings)
		default:
			printf("  %-9s %s: %v\n", f.Status, name, f.Err)
		}
	}

	return errors.Join(errs...)
}
