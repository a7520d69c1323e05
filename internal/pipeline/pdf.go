package pipeline

import (
	"context"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
	"github.com/neslang-05/LaTeX-Convertor/internal/extract"
)

// PDFParser extracts the PDF text layer and reflows it into paragraph
// blocks. Extracted PDF text carries no structural markers, so no
// heading, list, or table detection is attempted.
type PDFParser struct{}

var _ Parser = (*PDFParser)(nil)

// NewPDFParser creates a PDFParser.
func NewPDFParser() *PDFParser {
	return &PDFParser{}
}

// Parse fails only when the PDF container cannot be read. A readable
// PDF without a text layer (a scan) yields zero blocks, which is
// degradation, not an error. Page breaks act as paragraph boundaries.
func (p *PDFParser) Parse(ctx context.Context, source []byte) ([]document.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pages, err := extract.ReadPDFText(source)
	if err != nil {
		return nil, err
	}
	return reflowParagraphs(strings.Join(pages, "\n\n")), nil
}
