package latex

// Notes:
// - Build: documentclass, geometry, baseline packages in canonical order
// - Build: extras append de-duplicated, geometry never loads twice
// - Build: listing setup and custom preamble land after the packages
// - Build: title block only when a title exists, \today when no date

import (
	"strings"
	"testing"
)

// defaultHeader is the exact output of Build for default settings with
// no listing setup, custom preamble, or title.
const defaultHeader = `\documentclass[12pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{graphicx}
\usepackage{hyperref}
\usepackage{amsmath}
\usepackage{listings}
\usepackage{xcolor}
\usepackage{booktabs}
\usepackage{float}
`

func defaultPreamble() *Preamble {
	return &Preamble{
		Class:    "article",
		FontSize: "12pt",
		Margins:  "margin=1in",
	}
}

// ---------------------------------------------------------------------------
// TestPreamble_Build - Header Assembly
// ---------------------------------------------------------------------------

func TestPreamble_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pre  *Preamble
		want string
	}{
		{
			name: "defaults",
			pre:  defaultPreamble(),
			want: defaultHeader,
		},
		{
			name: "class and font size lowered",
			pre: &Preamble{
				Class:    "Report",
				FontSize: "11PT",
				Margins:  "margin=1in",
			},
			want: "\\documentclass[11pt]{report}\n" +
				strings.TrimPrefix(defaultHeader, "\\documentclass[12pt]{article}\n"),
		},
		{
			name: "custom margins pass through verbatim",
			pre: &Preamble{
				Class:    "article",
				FontSize: "12pt",
				Margins:  "left=2cm, right=2cm",
			},
			want: strings.Replace(defaultHeader,
				"[margin=1in]", "[left=2cm, right=2cm]", 1),
		},
		{
			name: "extra packages append after baseline",
			pre: &Preamble{
				Class:         "article",
				FontSize:      "12pt",
				Margins:       "margin=1in",
				ExtraPackages: []string{"tikz", "siunitx"},
			},
			want: defaultHeader + "\\usepackage{tikz}\n\\usepackage{siunitx}\n",
		},
		{
			name: "listing setup after packages with single trailing newline",
			pre: &Preamble{
				Class:        "article",
				FontSize:     "12pt",
				Margins:      "margin=1in",
				ListingSetup: "\\lstset{breaklines=true}\n\n",
			},
			want: defaultHeader + "\\lstset{breaklines=true}\n",
		},
		{
			name: "custom preamble after listing setup",
			pre: &Preamble{
				Class:          "article",
				FontSize:       "12pt",
				Margins:        "margin=1in",
				ListingSetup:   "\\lstset{breaklines=true}",
				CustomPreamble: "\\usepackage{fontspec}",
			},
			want: defaultHeader +
				"\\lstset{breaklines=true}\n" +
				"\\usepackage{fontspec}\n",
		},
		{
			name: "title block with default date",
			pre: &Preamble{
				Class:    "article",
				FontSize: "12pt",
				Margins:  "margin=1in",
				Title:    "Q4 Report & Analysis",
				Author:   "Auto-Generated",
			},
			want: defaultHeader +
				"\\title{Q4 Report \\& Analysis}\n" +
				"\\author{Auto-Generated}\n" +
				"\\date{\\today}\n",
		},
		{
			name: "explicit date is escaped",
			pre: &Preamble{
				Class:    "article",
				FontSize: "12pt",
				Margins:  "margin=1in",
				Title:    "Notes",
				Author:   "Ana",
				Date:     "May & June",
			},
			want: defaultHeader +
				"\\title{Notes}\n" +
				"\\author{Ana}\n" +
				"\\date{May \\& June}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.pre.Build(); got != tt.want {
				t.Errorf("Build() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPreamble_packages - Package Merge
// ---------------------------------------------------------------------------

func TestPreamble_packages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		extras []string
		want   string
	}{
		{
			name:   "no extras",
			extras: nil,
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float",
		},
		{
			name:   "extras in supplied order",
			extras: []string{"siunitx", "tikz"},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float,siunitx,tikz",
		},
		{
			name:   "baseline duplicate dropped",
			extras: []string{"amsmath", "tikz"},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float,tikz",
		},
		{
			name:   "geometry never loads twice",
			extras: []string{"geometry"},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float",
		},
		{
			name:   "repeated extra dropped",
			extras: []string{"tikz", "tikz"},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float,tikz",
		},
		{
			name:   "blank entries skipped",
			extras: []string{"", "  ", "tikz"},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float,tikz",
		},
		{
			name:   "surrounding whitespace trimmed",
			extras: []string{"  tikz  "},
			want:   "graphicx,hyperref,amsmath,listings,xcolor,booktabs,float,tikz",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pre := defaultPreamble()
			pre.ExtraPackages = tt.extras
			got := strings.Join(pre.packages(), ",")
			if got != tt.want {
				t.Errorf("packages() = %q, want %q", got, tt.want)
			}
		})
	}
}
