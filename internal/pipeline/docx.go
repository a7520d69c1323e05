package pipeline

import (
	"context"
	"strconv"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
	"github.com/neslang-05/LaTeX-Convertor/internal/extract"
)

// DocxParser maps the extracted OOXML body onto blocks: heading styles
// to Heading, list styles to List trees, tables to flattened grids, and
// everything unrecognized to Paragraph.
type DocxParser struct{}

var _ Parser = (*DocxParser)(nil)

// NewDocxParser creates a DocxParser.
func NewDocxParser() *DocxParser {
	return &DocxParser{}
}

// Parse fails only when the DOCX container cannot be decoded. Unknown
// styles and structures degrade to paragraphs; empty paragraphs are
// spacing and drop.
func (p *DocxParser) Parse(ctx context.Context, source []byte) ([]document.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := extract.ReadDocx(source)
	if err != nil {
		return nil, err
	}

	var blocks []document.Block
	var list *listBuilder

	flushList := func() {
		if list != nil {
			blocks = append(blocks, list.finish())
			list = nil
		}
	}

	for _, el := range doc.Body {
		switch v := el.(type) {
		case *extract.Paragraph:
			runs := paragraphRuns(v)
			if strings.TrimSpace(document.Text(runs)) == "" {
				continue
			}
			if level, ok := headingLevel(v); ok {
				flushList()
				blocks = append(blocks, document.Heading{Level: level, Text: runs})
				continue
			}
			if ordered, ok := listKind(v); ok {
				depth := v.NumberingLevel
				if depth < 0 {
					depth = 0
				}
				if list == nil {
					list = newListBuilder(ordered)
				}
				if !list.push(depth, ordered, runs) {
					flushList()
					list = newListBuilder(ordered)
					list.push(depth, ordered, runs)
				}
				continue
			}
			flushList()
			blocks = append(blocks, document.Paragraph{Text: runs})

		case *extract.Table:
			flushList()
			if tbl, ok := mapTable(v); ok {
				blocks = append(blocks, tbl)
			}
		}
	}
	flushList()
	return blocks, nil
}

func paragraphRuns(p *extract.Paragraph) []document.Run {
	runs := make([]document.Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		runs = append(runs, document.Run{Text: r.Text, Bold: r.Bold, Italic: r.Italic})
	}
	return runs
}

// headingLevel maps style metadata to a heading level. The style name
// wins over the outline level; "Title" maps to level 1. Outline levels
// past the sixth clamp rather than fail.
func headingLevel(p *extract.Paragraph) (int, bool) {
	name := strings.ToLower(p.StyleName)
	if name == "" {
		name = strings.ToLower(p.StyleID)
	}
	if name == "title" {
		return 1, true
	}
	// Matches both the display form "heading 1" and the ID form
	// "heading1".
	if rest, ok := strings.CutPrefix(name, "heading"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil && n >= 1 && n <= 6 {
			return n, true
		}
	}
	if p.OutlineLevel >= 0 {
		n := p.OutlineLevel + 1
		if n > 6 {
			n = 6
		}
		return n, true
	}
	return 0, false
}

// listKind reports whether the paragraph belongs to a list and whether
// that list is ordered. "number" styles are ordered; bullet and other
// list styles are not. A bare numbering reference without numbering.xml
// context defaults to a bullet.
func listKind(p *extract.Paragraph) (ordered, ok bool) {
	name := strings.ToLower(p.StyleName)
	if name == "" {
		name = strings.ToLower(p.StyleID)
	}
	switch {
	case strings.Contains(name, "number"):
		return true, true
	case strings.Contains(name, "bullet"), strings.Contains(name, "list"):
		return false, true
	case p.NumberingLevel >= 0:
		return false, true
	}
	return false, false
}

func mapTable(t *extract.Table) (document.Table, bool) {
	if len(t.Rows) == 0 {
		return document.Table{}, false
	}
	rows := make([]document.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make(document.Row, 0, len(r))
		for _, cell := range r {
			row = append(row, document.Cell(document.Plain(cell)))
		}
		rows = append(rows, row)
	}
	return document.Table{Rows: rows}, true
}
