package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neslang-05/LaTeX-Convertor/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath   string        // DOC2TEX_CONFIG: config file name or path
	ListingStyle string        // DOC2TEX_LISTING_STYLE: listing style name or path
	Timeout      time.Duration // DOC2TEX_TIMEOUT: per-file timeout

	// Tier 2 - I/O and identity
	InputDir  string // DOC2TEX_INPUT_DIR: default input directory
	OutputDir string // DOC2TEX_OUTPUT_DIR: default output directory
	Author    string // DOC2TEX_AUTHOR: document author
	Date      string // DOC2TEX_DATE: document date

	// Tier 3 - Document shell
	Class    string // DOC2TEX_CLASS: article, report, book
	FontSize string // DOC2TEX_FONT_SIZE: 10pt, 11pt, 12pt
	Margins  string // DOC2TEX_MARGINS: geometry options
	Workers  int    // DOC2TEX_WORKERS: parallel workers
}

// knownEnvVars lists valid DOC2TEX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"DOC2TEX_CONFIG":        true,
	"DOC2TEX_LISTING_STYLE": true,
	"DOC2TEX_TIMEOUT":       true,
	// Tier 2 - I/O and identity
	"DOC2TEX_INPUT_DIR":  true,
	"DOC2TEX_OUTPUT_DIR": true,
	"DOC2TEX_AUTHOR":     true,
	"DOC2TEX_DATE":       true,
	// Tier 3 - Document shell
	"DOC2TEX_CLASS":     true,
	"DOC2TEX_FONT_SIZE": true,
	"DOC2TEX_MARGINS":   true,
	"DOC2TEX_WORKERS":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized DOC2TEX_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath:   os.Getenv("DOC2TEX_CONFIG"),
		ListingStyle: os.Getenv("DOC2TEX_LISTING_STYLE"),
		// Tier 2
		InputDir:  os.Getenv("DOC2TEX_INPUT_DIR"),
		OutputDir: os.Getenv("DOC2TEX_OUTPUT_DIR"),
		Author:    os.Getenv("DOC2TEX_AUTHOR"),
		Date:      os.Getenv("DOC2TEX_DATE"),
		// Tier 3
		Class:    os.Getenv("DOC2TEX_CLASS"),
		FontSize: os.Getenv("DOC2TEX_FONT_SIZE"),
		Margins:  os.Getenv("DOC2TEX_MARGINS"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("DOC2TEX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("DOC2TEX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized DOC2TEX_* variables.
// Helps catch typos like DOC2TEX_AUTOR instead of DOC2TEX_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DOC2TEX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Listing style (timeout handled separately in resolveTimeout)
	if env.ListingStyle != "" && cfg.Listings.Style == "" {
		cfg.Listings.Style = env.ListingStyle
	}

	// Tier 2 - I/O
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	// Tier 2 - Identity
	if env.Author != "" && cfg.Meta.Author == "" {
		cfg.Meta.Author = env.Author
	}
	if env.Date != "" && cfg.Meta.Date == "" {
		cfg.Meta.Date = env.Date
	}

	// Tier 3 - Document shell
	if env.Class != "" && cfg.Document.Class == "" {
		cfg.Document.Class = env.Class
	}
	if env.FontSize != "" && cfg.Document.FontSize == "" {
		cfg.Document.FontSize = env.FontSize
	}
	if env.Margins != "" && cfg.Document.Margins == "" {
		cfg.Document.Margins = env.Margins
	}
}
