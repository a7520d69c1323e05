// Package doc2tex converts DOCX, PDF, Markdown, and plain-text documents
// into compilable LaTeX source.
//
// # Quick Start
//
// Create a converter once and reuse it for every document:
//
//	conv, err := doc2tex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, doc2tex.Input{
//	    Source: content,
//	    Format: doc2tex.FormatMarkdown,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.tex", result.TeX, 0644)
//
// The result contains the LaTeX source (result.TeX) and the number of
// body blocks it was built from (result.Blocks) for caller-side
// diagnostics.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Format dispatch (docx, pdf, md, txt) to the matching parser
//  2. Parsing into a shared block model (headings, paragraphs, lists,
//     tables, code blocks)
//  3. Preamble assembly (document class, packages, listing setup, title)
//  4. LaTeX emission with reserved-character escaping
//
// Parsers degrade rather than fail: malformed constructs render as
// plain paragraphs. Only an unreadable container (corrupt DOCX zip,
// unparseable PDF) surfaces an error.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := doc2tex.NewConverter(
//	    doc2tex.WithListingStyle("minimal"),
//	    doc2tex.WithAssetPath("/path/to/custom/styles"),
//	)
//
// Per-conversion settings are passed via Input:
//
//	result, err := conv.Convert(ctx, doc2tex.Input{
//	    Source:   content,
//	    Format:   doc2tex.FormatDocx,
//	    Settings: &doc2tex.Settings{Class: "report", FontSize: "11pt"},
//	    Meta:     &doc2tex.Metadata{Title: "Quarterly Report"},
//	})
//
// # Parallel Processing
//
// A Converter is stateless after construction and safe for concurrent
// use. Batch callers share one instance across goroutines; there is
// nothing to close.
//
// # Custom Listing Styles
//
// WithListingStyle accepts an embedded style name (default, minimal,
// academic), a path to a .tex file, or literal \lstset content.
// WithAssetPath points at a directory of additional .tex styles that
// take precedence over the embedded set:
//
//	assets/
//	└── styles/
//	    ├── corporate.tex
//	    └── thesis.tex
package doc2tex
