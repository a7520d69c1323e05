// Package extract pulls raw structure out of container formats: the
// ordered body of a DOCX archive and the text layer of a PDF. It knows
// nothing about LaTeX or the block model; the pipeline adapters map its
// output onto document blocks.
package extract

// Document is the parsed body of a DOCX file, in source order.
type Document struct {
	Body []BodyElement
}

// BodyElement is either a *Paragraph or a *Table.
type BodyElement interface {
	isBodyElement()
}

// Paragraph is one w:p element with its style metadata resolved.
type Paragraph struct {
	// StyleID is the raw w:pStyle reference, "" when unstyled.
	StyleID string

	// StyleName is the human-readable style name from styles.xml,
	// "" when the style table is missing or has no such style.
	StyleName string

	// OutlineLevel is the 0-based OOXML outline level (0 means a
	// top-level heading), -1 when neither the paragraph nor its style
	// declares one.
	OutlineLevel int

	// NumberingLevel is the w:ilvl list indent, -1 when the paragraph
	// is not part of a numbered or bulleted list.
	NumberingLevel int

	Runs []Run
}

// Run is a span of paragraph text with its direct formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Table is a w:tbl flattened to plain-text cells. Nested tables fold
// into the text of the cell that contains them.
type Table struct {
	Rows [][]string
}

func (*Paragraph) isBodyElement() {}
func (*Table) isBodyElement()     {}
