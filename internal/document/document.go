// Package document defines the intermediate block model shared by the
// format parsers and the LaTeX emitter.
//
// A parsed document is an ordered sequence of Block values. Blocks are
// plain data: parsers build them, the emitter walks them, and nothing
// mutates them in between. Run text is always raw source text; escaping
// happens once, at emission time.
package document

// Block is one structural unit of a document: heading, paragraph, list,
// table, or code block.
type Block interface {
	isBlock()
}

// Run is a span of inline text sharing one style combination.
// Text holds raw, pre-escape source text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

// Heading is a section heading with level 1 (top) through 6 (deepest).
type Heading struct {
	Level int
	Text  []Run
}

// Paragraph is a single block of inline content.
type Paragraph struct {
	Text []Run
}

// List is an ordered or unordered list with at least one item.
// Items nest through Children, forming an owned tree.
type List struct {
	Ordered bool
	Items   []Item
}

// Item is one list entry. Children is nil for leaf items.
type Item struct {
	Content  []Run
	Children *List
}

// Table is a grid of rows. Rows may have differing widths; the emitter
// pads short rows to the widest one.
type Table struct {
	Rows []Row
}

// Row is an ordered sequence of cells.
type Row []Cell

// Cell holds one cell's inline content.
type Cell []Run

// CodeBlock is verbatim text with an optional language tag. Raw is
// opaque: it is never escaped or style-resolved, only wrapped.
type CodeBlock struct {
	Language string
	Raw      string
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Table) isBlock()     {}
func (CodeBlock) isBlock() {}

// Plain builds a single-run sequence with no styling.
func Plain(text string) []Run {
	return []Run{{Text: text}}
}

// Text concatenates the raw text of a run sequence, dropping styling.
func Text(runs []Run) string {
	if len(runs) == 1 {
		return runs[0].Text
	}
	var out string
	for _, r := range runs {
		out += r.Text
	}
	return out
}
