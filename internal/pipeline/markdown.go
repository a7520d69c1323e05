package pipeline

import (
	"context"
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// MarkdownParser is a line-oriented state machine over a Markdown
// subset: ATX headings, fenced code blocks, nested lists, and inline
// bold/italic/code spans. It has two states, normal and in-code-block;
// the open list is an accumulator, not a state.
type MarkdownParser struct{}

var _ Parser = (*MarkdownParser)(nil)

// NewMarkdownParser creates a MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse converts Markdown source into blocks. It is total: any input
// yields a valid block sequence, malformed markup degrades to literal
// text. An unclosed fence closes implicitly at end of input.
func (p *MarkdownParser) Parse(ctx context.Context, source []byte) ([]document.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		blocks    []document.Block
		inCode    bool
		codeLang  string
		codeLines []string
		list      *listBuilder
	)

	flushList := func() {
		if list != nil {
			blocks = append(blocks, list.finish())
			list = nil
		}
	}

	for _, raw := range strings.Split(string(source), "\n") {
		line := strings.TrimSuffix(raw, "\r")

		if inCode {
			if strings.TrimSpace(line) == "```" {
				inCode = false
				blocks = append(blocks, document.CodeBlock{
					Language: codeLang,
					Raw:      strings.Join(codeLines, "\n"),
				})
				codeLang, codeLines = "", nil
				continue
			}
			codeLines = append(codeLines, line)
			continue
		}

		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			flushList()
			inCode = true
			codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			continue
		}

		if trimmed == "" {
			flushList()
			continue
		}

		if level, text, ok := parseHeading(trimmed); ok {
			flushList()
			blocks = append(blocks, document.Heading{Level: level, Text: parseSpans(text)})
			continue
		}

		if ordered, content, ok := parseListMarker(trimmed); ok {
			depth := (len(line) - len(strings.TrimLeft(line, " "))) / 2
			runs := parseSpans(content)
			if list == nil {
				list = newListBuilder(ordered)
			}
			if !list.push(depth, ordered, runs) {
				// Marker kind changed at an open level: that list is
				// done, this line starts the next one.
				flushList()
				list = newListBuilder(ordered)
				list.push(depth, ordered, runs)
			}
			continue
		}

		flushList()
		blocks = append(blocks, document.Paragraph{Text: parseSpans(trimmed)})
	}

	if inCode {
		blocks = append(blocks, document.CodeBlock{
			Language: codeLang,
			Raw:      strings.Join(codeLines, "\n"),
		})
	}
	flushList()
	return blocks, nil
}

// parseHeading matches an ATX heading: one to six # characters, a
// space, then the heading text. Seven or more # characters are not a
// heading and fall through to paragraph handling.
func parseHeading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n == len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n:]), true
}

// parseListMarker matches a list item marker: "- ", "* ", or digits
// followed by ". ". The trailing space is required, so "*emphasis*"
// never reads as a bullet.
func parseListMarker(line string) (ordered bool, content string, ok bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return false, strings.TrimSpace(line[2:]), true
	}
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n > 0 && n+1 < len(line) && line[n] == '.' && line[n+1] == ' ' {
		return true, strings.TrimSpace(line[n+2:]), true
	}
	return false, "", false
}

// listBuilder grows one List block from consecutive marker lines.
// stack[d] is the open list at nesting depth d; stack[0] is the root
// that becomes the emitted block.
type listBuilder struct {
	root  *document.List
	stack []*document.List
}

func newListBuilder(ordered bool) *listBuilder {
	root := &document.List{Ordered: ordered}
	return &listBuilder{root: root, stack: []*document.List{root}}
}

// push adds an item at the given depth, opening or closing nested lists
// as needed. A depth more than one level below the current one clamps
// to one new level. It reports false when the marker kind conflicts
// with the open list at that depth; the block is then complete and the
// caller starts a new one.
func (b *listBuilder) push(depth int, ordered bool, content []document.Run) bool {
	if depth >= len(b.stack) {
		parent := b.stack[len(b.stack)-1]
		if len(parent.Items) == 0 {
			// Nothing to nest under: treat the item as a sibling.
			depth = len(b.stack) - 1
		} else {
			child := &document.List{Ordered: ordered}
			parent.Items[len(parent.Items)-1].Children = child
			b.stack = append(b.stack, child)
			depth = len(b.stack) - 1
		}
	}

	b.stack = b.stack[:depth+1]
	target := b.stack[depth]
	if target.Ordered != ordered {
		return false
	}
	target.Items = append(target.Items, document.Item{Content: content})
	return true
}

func (b *listBuilder) finish() document.List {
	return *b.root
}
