package pipeline

import (
	"context"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// TextParser splits plain text into paragraphs on blank-line
// boundaries. No heading, list, or inline style detection: every
// paragraph is a single raw run that gets plain escaping at emission.
type TextParser struct{}

var _ Parser = (*TextParser)(nil)

// NewTextParser creates a TextParser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse is total: any text yields a valid block sequence, possibly
// empty.
func (p *TextParser) Parse(ctx context.Context, source []byte) ([]document.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reflowParagraphs(string(source)), nil
}

// reflowParagraphs joins consecutive non-blank lines into single-run
// paragraphs with one space between source lines. Blank lines are
// paragraph boundaries; runs of them collapse into one.
func reflowParagraphs(text string) []document.Block {
	var blocks []document.Block
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, document.Paragraph{
				Text: document.Plain(strings.Join(current, " ")),
			})
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
