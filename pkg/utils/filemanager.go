// =============================================================================
// Election Results Verifier - File Utilities
// =============================================================================
//
// This module provides file utilities for the verifier, including:
//   - Path sanity checks for input files
//   - Report file naming
//   - Directory management
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrFileNotFound means the path does not exist or is not a regular file.
	ErrFileNotFound = errors.New("can't find file at path")

	// ErrNotCSV means the file name does not end in .csv.
	ErrNotCSV = errors.New("filename does not end in .csv")
)

// =============================================================================
// PATH SANITY CHECK
// =============================================================================

// CheckInputPath verifies that path names an existing regular file with a
// .csv extension.
//
// RETURNS:
//   - nil if the file can be verified.
//   - An error wrapping ErrFileNotFound or ErrNotCSV otherwise.
func CheckInputPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w %s", ErrFileNotFound, path)
	}

	if filepath.Ext(path) != ".csv" {
		return fmt.Errorf("%w: %s", ErrNotCSV, path)
	}

	return nil
}

// =============================================================================
// REPORT FILE NAMING
// =============================================================================

// GenerateReportFileName generates a unique report file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//   - params: Additional placeholder values, keyed without braces.
//
// RETURNS:
//   - The generated file name, always ending in .xlsx.
//
// EXAMPLE:
//   format: "verify_report_{timestamp}_{uuid}.xlsx"
//   output: "verify_report_20241108_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xlsx"
func GenerateReportFileName(format string, params map[string]string) string {
	return generateReportFileName(format, params, time.Now(), uuid.New())
}

func generateReportFileName(format string, params map[string]string, now time.Time, id uuid.UUID) string {
	replacements := map[string]string{
		"{uuid}":      id.String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}

	return result
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectory creates dir and any missing parents.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
