// =============================================================================
// Election Results Verifier - Configuration Module
// =============================================================================
//
// This module loads the verifier configuration. Settings come from three
// layers, later layers overriding earlier ones:
//
//   1. Built-in defaults (applyDefaults)
//   2. The YAML configuration file (verifier.yaml by default)
//   3. Environment variables, optionally loaded from a .env file
//
// ENVIRONMENT VARIABLES:
//   VERIFIER_LOG_LEVEL         logging.level
//   VERIFIER_LOG_FORMAT        logging.format
//   VERIFIER_STRICT_FILENAMES  verify.strict_filenames
//   VERIFIER_SERVER_ADDR       server.addr
//
// The rule vocabularies (columns, offices, pseudocandidates) are not part of
// the configuration; they are fixed in the validation package.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/election-results-verifier/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when --config is not given.
const DefaultPath = "verifier.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the verifier configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Verify  VerifyConfig  `yaml:"verify"`
	Report  ReportConfig  `yaml:"report"`
	Server  ServerConfig  `yaml:"server"`
}

// LoggingConfig controls diagnostic logging. Findings are not logs and are
// unaffected by these settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// VerifyConfig controls file verification.
type VerifyConfig struct {
	// StrictFilenames skips files whose name lacks the five-component
	// structure instead of verifying them against an empty county.
	// Default: false
	StrictFilenames bool `yaml:"strict_filenames"`
}

// ReportConfig controls the findings workbook.
type ReportConfig struct {
	// WorkbookDir, when set, receives a findings workbook for every batch run.
	// Default: "" (no workbook unless --xlsx is given)
	WorkbookDir string `yaml:"workbook_dir"`

	// FilenameFormat names workbooks written to WorkbookDir.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}
	// Default: "verify_report_{timestamp}_{uuid}.xlsx"
	FilenameFormat string `yaml:"filename_format"`
}

// ServerConfig controls the HTTP verification service.
type ServerConfig struct {
	// Addr is the listen address.
	// Default: ":8080"
	Addr string `yaml:"addr"`

	// MaxUploadBytes caps the size of a CSV body.
	// Default: 32 MiB
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// RequestTimeout bounds the handling of a single request.
	// Default: 60s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadEnv loads environment variables from the given .env files. Files that
// do not exist are ignored. Variables already set in the environment win.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if !utils.FileExists(file) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the configuration file at path and applies defaults and
// environment overrides.
//
// PARAMETERS:
//   - path: The path to the YAML configuration file.
//   - required: When false, a missing file is not an error and the
//     defaults are used.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read or parsed, or the result is invalid.
func Load(path string, required bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Report.FilenameFormat == "" {
		cfg.Report.FilenameFormat = "verify_report_{timestamp}_{uuid}.xlsx"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 32 << 20
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 60 * time.Second
	}
}

// applyEnv overrides configuration values from the environment.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("VERIFIER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("VERIFIER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("VERIFIER_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VERIFIER_STRICT_FILENAMES"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("VERIFIER_STRICT_FILENAMES: %w", err)
		}
		cfg.Verify.StrictFilenames = strict
	}
	return nil
}

// validate checks the configuration for values that cannot work.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Logging.Format)
	}

	if cfg.Server.MaxUploadBytes < 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must be positive")
	}

	return nil
}
