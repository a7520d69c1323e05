package latex

import "strings"

// baselinePackages are always loaded, in this fixed order, right after
// geometry. Configuration extras append to this list, never replace it.
var baselinePackages = []string{
	"graphicx",
	"hyperref",
	"amsmath",
	"listings",
	"xcolor",
	"booktabs",
	"float",
}

// Preamble holds everything the document header needs. The caller
// populates and normalizes the fields; Build performs no validation.
type Preamble struct {
	Class          string   // article, report, book
	FontSize       string   // 10pt, 11pt, 12pt
	Margins        string   // geometry package options, e.g. "margin=1in"
	ExtraPackages  []string // appended after the baseline, de-duplicated
	CustomPreamble string   // trusted literal LaTeX, appended verbatim
	ListingSetup   string   // \lstset block from the resolved listing style

	// Title metadata. When Title is empty no title block is emitted and
	// Emit skips \maketitle.
	Title  string
	Author string
	Date   string // empty means \date{\today}
}

// Build assembles the header text, ending just before \begin{document}.
// Deterministic: the same Preamble always yields the same bytes.
func (p *Preamble) Build() string {
	var sb strings.Builder

	sb.WriteString(`\documentclass[`)
	sb.WriteString(strings.ToLower(p.FontSize))
	sb.WriteString(`]{`)
	sb.WriteString(strings.ToLower(p.Class))
	sb.WriteString("}\n")

	sb.WriteString(`\usepackage[`)
	sb.WriteString(p.Margins)
	sb.WriteString("]{geometry}\n")

	for _, pkg := range p.packages() {
		sb.WriteString(`\usepackage{`)
		sb.WriteString(pkg)
		sb.WriteString("}\n")
	}

	if p.ListingSetup != "" {
		sb.WriteString(strings.TrimRight(p.ListingSetup, "\n"))
		sb.WriteString("\n")
	}

	if p.CustomPreamble != "" {
		sb.WriteString(strings.TrimRight(p.CustomPreamble, "\n"))
		sb.WriteString("\n")
	}

	if p.Title != "" {
		sb.WriteString(`\title{`)
		sb.WriteString(Escape(p.Title))
		sb.WriteString("}\n")
		sb.WriteString(`\author{`)
		sb.WriteString(Escape(p.Author))
		sb.WriteString("}\n")
		if p.Date == "" {
			sb.WriteString("\\date{\\today}\n")
		} else {
			sb.WriteString(`\date{`)
			sb.WriteString(Escape(p.Date))
			sb.WriteString("}\n")
		}
	}

	return sb.String()
}

// packages merges the baseline list with the extras: baseline first in
// canonical order, extras in supplied order, duplicates dropped.
// geometry is excluded because it is already loaded with the margin
// options.
func (p *Preamble) packages() []string {
	seen := make(map[string]bool, len(baselinePackages)+len(p.ExtraPackages)+1)
	seen["geometry"] = true

	out := make([]string, 0, len(baselinePackages)+len(p.ExtraPackages))
	for _, pkg := range baselinePackages {
		seen[pkg] = true
		out = append(out, pkg)
	}
	for _, pkg := range p.ExtraPackages {
		pkg = strings.TrimSpace(pkg)
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		out = append(out, pkg)
	}
	return out
}
