package doc2tex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/assets"
	"github.com/neslang-05/LaTeX-Convertor/internal/extract"
	"github.com/neslang-05/LaTeX-Convertor/internal/fileutil"
	"github.com/neslang-05/LaTeX-Convertor/internal/latex"
	"github.com/neslang-05/LaTeX-Convertor/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.Parser = (*pipeline.DocxParser)(nil)
	_ pipeline.Parser = (*pipeline.PDFParser)(nil)
	_ pipeline.Parser = (*pipeline.MarkdownParser)(nil)
	_ pipeline.Parser = (*pipeline.TextParser)(nil)
)

// DefaultAuthor fills the \author field when a title is set without one.
const DefaultAuthor = "Auto-Generated"

// Converter orchestrates the document-to-LaTeX conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter
// is stateless after construction and safe for concurrent use.
type Converter struct {
	cfg            converterConfig
	assetLoader    assets.AssetLoader
	docxParser     pipeline.Parser
	pdfParser      pipeline.Parser
	markdownParser pipeline.Parser
	textParser     pipeline.Parser
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithListingStyle,
// WithAssetPath). Returns an error if the asset path is unusable or the
// requested listing style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		assetLoader:    assets.NewEmbeddedLoader(),
		docxParser:     pipeline.NewDocxParser(),
		pdfParser:      pipeline.NewPDFParser(),
		markdownParser: pipeline.NewMarkdownParser(),
		textParser:     pipeline.NewTextParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: custom styles shadow embedded ones.
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Resolve style input (name, path, or \lstset content) to the
	// listing setup block the preamble embeds.
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert parses the source and returns the result containing the
// LaTeX output. The context is used for cancellation and timeout.
// Empty source is valid and yields a document with an empty body.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	parser, ok := c.parserFor(input.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: docx, pdf, md, txt)", ErrUnsupportedFormat, input.Format)
	}

	blocks, err := parser.Parse(ctx, input.Source)
	if err != nil {
		return nil, wrapParseError(input.Format, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tex := latex.Emit(blocks, c.toPreamble(input))

	return &Result{TeX: []byte(tex), Blocks: len(blocks)}, nil
}

// validateInput checks that conversion parameters are valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their settings validated earlier at config
// load time. Both paths converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Format == "" {
		return fmt.Errorf("%w: format tag is empty (supported: docx, pdf, md, txt)", ErrUnsupportedFormat)
	}
	return input.Settings.Validate()
}

// parserFor maps a format tag to its parser (case-insensitive).
func (c *Converter) parserFor(format string) (pipeline.Parser, bool) {
	switch strings.ToLower(format) {
	case FormatDocx:
		return c.docxParser, true
	case FormatPDF:
		return c.pdfParser, true
	case FormatMarkdown:
		return c.markdownParser, true
	case FormatText:
		return c.textParser, true
	}
	return nil, false
}

// wrapParseError translates extraction sentinels into public ones so
// callers can branch with errors.Is without importing internal packages.
func wrapParseError(format string, err error) error {
	switch {
	case errors.Is(err, extract.ErrNotDocx):
		return fmt.Errorf("%w: %v", ErrDocxParse, err)
	case errors.Is(err, extract.ErrPDFRead):
		return fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	return fmt.Errorf("parsing %s input: %w", format, err)
}

// toPreamble builds the document header from settings and metadata,
// applying defaults for anything left empty.
func (c *Converter) toPreamble(input Input) *latex.Preamble {
	pre := &latex.Preamble{
		Class:        ClassArticle,
		FontSize:     FontSize12,
		Margins:      DefaultMargins,
		ListingSetup: c.cfg.resolvedStyle,
	}

	if s := input.Settings; s != nil {
		if s.Class != "" {
			pre.Class = s.Class
		}
		if s.FontSize != "" {
			pre.FontSize = s.FontSize
		}
		if s.Margins != "" {
			pre.Margins = s.Margins
		}
		pre.ExtraPackages = s.ExtraPackages
		pre.CustomPreamble = s.CustomPreamble
	}

	if m := input.Meta; m != nil && m.Title != "" {
		pre.Title = m.Title
		pre.Author = m.Author
		if pre.Author == "" {
			pre.Author = DefaultAuthor
		}
		pre.Date = m.Date
	}

	return pre
}

// resolveStyle resolves the style input (name, path, or \lstset content)
// to the listing setup block. Called during NewConverter after options
// are applied and the asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// Literal \lstset content? Use as-is.
	if strings.Contains(input, `\lstset`) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader.
	setup, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = setup
	return nil
}
