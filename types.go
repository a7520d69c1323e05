package doc2tex

import (
	"fmt"
	"strings"
)

// Format tags accepted by Input.Format. Comparison is case-insensitive.
const (
	FormatDocx     = "docx"
	FormatPDF      = "pdf"
	FormatMarkdown = "md"
	FormatText     = "txt"
)

// Document class constants.
const (
	ClassArticle = "article"
	ClassReport  = "report"
	ClassBook    = "book"
)

// Font size constants.
const (
	FontSize10 = "10pt"
	FontSize11 = "11pt"
	FontSize12 = "12pt"
)

// DefaultMargins is the geometry option applied when Settings leave
// Margins empty.
const DefaultMargins = "margin=1in"

// Settings configures the emitted document's preamble.
type Settings struct {
	Class          string   // "article", "report", "book" (default article)
	FontSize       string   // "10pt", "11pt", "12pt" (default 12pt)
	Margins        string   // geometry options, passed through verbatim
	ExtraPackages  []string // appended after the baseline packages
	CustomPreamble string   // literal LaTeX appended before the title block
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Class:    ClassArticle,
		FontSize: FontSize12,
		Margins:  DefaultMargins,
	}
}

// Validate checks that settings are valid.
// Returns nil if s is nil (nil means use defaults). Empty fields are
// valid and fall back to defaults at conversion time.
// Does not mutate - uses case-insensitive comparison.
func (s *Settings) Validate() error {
	if s == nil {
		return nil
	}

	if s.Class != "" && !isValidClass(s.Class) {
		return fmt.Errorf("%w: %q (must be article, report, or book)", ErrInvalidClass, s.Class)
	}

	if s.FontSize != "" && !isValidFontSize(s.FontSize) {
		return fmt.Errorf("%w: %q (must be 10pt, 11pt, or 12pt)", ErrInvalidFontSize, s.FontSize)
	}

	return nil
}

// isValidClass checks if class is a known document class (case-insensitive).
func isValidClass(class string) bool {
	switch strings.ToLower(class) {
	case ClassArticle, ClassReport, ClassBook:
		return true
	}
	return false
}

// isValidFontSize checks if size is a known font size (case-insensitive).
func isValidFontSize(size string) bool {
	switch strings.ToLower(size) {
	case FontSize10, FontSize11, FontSize12:
		return true
	}
	return false
}

// Metadata populates the document title block. A nil Metadata (or an
// empty Title) emits no title block and no \maketitle.
type Metadata struct {
	Title  string
	Author string // defaults to "Auto-Generated" when Title is set
	Date   string // empty means \today
}

// Input contains conversion parameters.
type Input struct {
	Source   []byte    // raw document bytes; empty is valid
	Format   string    // format tag (required), e.g. FormatMarkdown
	Settings *Settings // preamble settings (optional, nil = defaults)
	Meta     *Metadata // title metadata (optional, nil = no title block)
}

// Result contains the conversion output.
type Result struct {
	TeX    []byte // complete LaTeX source
	Blocks int    // number of body blocks the source yielded
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string
	resolvedStyle string
	assetPath     string
}

// WithListingStyle selects the \lstset block applied to code listings.
// Accepts an embedded style name ("default", "minimal", "academic"),
// a path to a .tex file, or literal \lstset content.
func WithListingStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath points the converter at a directory of custom listing
// styles. Styles found there shadow embedded styles of the same name.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
