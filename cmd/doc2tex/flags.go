package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document shell flags.
type documentFlags struct {
	class    string
	fontSize string
	margins  string
	packages []string
	preamble string
}

// metaFlags holds title block flags.
type metaFlags struct {
	title  string
	author string
	date   string
}

// styleFlags holds listing style flags.
type styleFlags struct {
	listingStyle string
	assetPath    string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	format   string
	document documentFlags
	meta     metaFlags
	style    styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and block counts")
}

// addDocumentFlags adds document shell flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.class, "class", "", "document class: article, report, book")
	fs.StringVar(&f.fontSize, "font-size", "", "font size: 10pt, 11pt, 12pt")
	fs.StringVar(&f.margins, "margins", "", "geometry options (e.g., margin=1in)")
	fs.StringSliceVar(&f.packages, "package", nil, "extra LaTeX package (repeatable or CSV)")
	fs.StringVar(&f.preamble, "preamble", "", "literal LaTeX appended to the preamble")
}

// addMetaFlags adds title block flags to a FlagSet.
func addMetaFlags(fs *flag.FlagSet, f *metaFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = file name)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.date, "date", "", "date: \"auto\", \"auto:FORMAT\", or literal")
}

// addStyleFlags adds listing style flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.listingStyle, "listing-style", "", "listing style name or .tex file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom styles directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.format, "format", "", "input format override: docx, pdf, md, txt")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addMetaFlags(fs, &f.meta)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
