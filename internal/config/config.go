// Package config loads and validates YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/fileutil"
	"github.com/neslang-05/LaTeX-Convertor/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Conversion inputs come from untrusted documents,
// but config fields flow into the LaTeX preamble and file paths, so they
// get bounded here.
const (
	MaxClassLength    = 20    // "article", "report", "book"
	MaxFontSizeLength = 10    // "10pt", "11pt", "12pt"
	MaxMarginsLength  = 100   // geometry option string
	MaxPackageLength  = 50    // single LaTeX package name
	MaxPreambleLength = 20000 // literal preamble LaTeX
	MaxTitleLength    = 200   // document title
	MaxAuthorLength   = 100   // author name
	MaxDateLength     = 60    // literal date or "auto:FORMAT"
	MaxStyleLength    = 4096  // listing style name or file path
	MaxPathLength     = 4096  // directory paths
	MaxTimeoutLength  = 20    // duration string, e.g. "1m30s"
)

// Config holds all configuration for LaTeX generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Meta     MetaConfig     `yaml:"meta"`
	Listings ListingsConfig `yaml:"listings"`
	Assets   AssetsConfig   `yaml:"assets"`
	Timeout  string         `yaml:"timeout"` // per-file conversion timeout, e.g. "30s" (empty = none)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// DocumentConfig defines the LaTeX document shell.
type DocumentConfig struct {
	Class    string   `yaml:"class"`    // "article", "report", "book" (default: "article")
	FontSize string   `yaml:"fontSize"` // "10pt", "11pt", "12pt" (default: "12pt")
	Margins  string   `yaml:"margins"`  // geometry options (default: "margin=1in")
	Packages []string `yaml:"packages"` // extra \usepackage names
	Preamble string   `yaml:"preamble"` // literal LaTeX appended after the packages
}

// MetaConfig defines the title block.
type MetaConfig struct {
	Title  string `yaml:"title"`  // Empty = per-file basename
	Author string `yaml:"author"` // Empty = "Auto-Generated" when a title is set
	Date   string `yaml:"date"`   // Literal, "auto", or "auto:FORMAT"
}

// ListingsConfig defines code listing styling.
type ListingsConfig struct {
	Style string `yaml:"style"` // Embedded style name or .tex file path
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Custom styles directory (empty = embedded only)
}

// Validate checks field lengths. Enum values (class, font size) are
// validated later by the library so config and flag inputs share one path.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("document.class", c.Document.Class, MaxClassLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.fontSize", c.Document.FontSize, MaxFontSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.margins", c.Document.Margins, MaxMarginsLength); err != nil {
		return err
	}
	for i, pkg := range c.Document.Packages {
		if err := validateFieldLength(fmt.Sprintf("document.packages[%d]", i), pkg, MaxPackageLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("document.preamble", c.Document.Preamble, MaxPreambleLength); err != nil {
		return err
	}

	if err := validateFieldLength("meta.title", c.Meta.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.author", c.Meta.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.date", c.Meta.Date, MaxDateLength); err != nil {
		return err
	}

	if err := validateFieldLength("listings.style", c.Listings.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("timeout", c.Timeout, MaxTimeoutLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration. The zero value is valid:
// every field falls back at merge time (flags > env > config > library defaults).
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate paths for a config name, in the order
// LoadConfig tries them: current directory then ~/.config/doc2tex/, with
// .yaml before .yml at each location.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "doc2tex", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// Dump renders the configuration as YAML for diagnostics.
func (c *Config) Dump() (string, error) {
	out, err := yamlutil.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
