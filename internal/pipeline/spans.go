package pipeline

import (
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// parseSpans resolves Markdown inline styling in one logical line into
// a run sequence. Run text stays raw; escaping happens at emission.
func parseSpans(text string) []document.Run {
	return resolveSpans(text, false, false)
}

// resolveSpans scans left to right carrying the ambient style of the
// enclosing span. At each delimiter it takes the nearest closer, so
// matches are the innermost ones. Longer delimiters are tried first and
// fall back to shorter ones, which is what makes **** collapse to an
// empty bold span instead of four literal stars. A delimiter with no
// closer is literal text and never consumes to end of line.
func resolveSpans(text string, bold, italic bool) []document.Run {
	var runs []document.Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, document.Run{Text: plain.String(), Bold: bold, Italic: italic})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == '`' {
			rest := text[i+1:]
			end := strings.IndexByte(rest, '`')
			if end < 0 {
				plain.WriteByte('`')
				i++
				continue
			}
			flush()
			// Code spans are terminal: their content is never style
			// resolved, so delimiters inside them stay literal.
			if content := rest[:end]; content != "" {
				runs = append(runs, document.Run{
					Text:   content,
					Bold:   bold,
					Italic: italic,
					Code:   true,
				})
			}
			i += end + 2
			continue
		}

		if text[i] == '*' {
			matched := false
			for _, delim := range []string{"***", "**", "*"} {
				if !strings.HasPrefix(text[i:], delim) {
					continue
				}
				rest := text[i+len(delim):]
				end := findCloser(rest, delim)
				if end < 0 {
					continue
				}
				flush()
				if inner := rest[:end]; inner != "" {
					switch delim {
					case "***":
						runs = append(runs, resolveSpans(inner, true, true)...)
					case "**":
						runs = append(runs, resolveSpans(inner, true, italic)...)
					case "*":
						runs = append(runs, resolveSpans(inner, bold, true)...)
					}
				}
				i += 2*len(delim) + end
				matched = true
				break
			}
			if !matched {
				plain.WriteByte('*')
				i++
			}
			continue
		}

		plain.WriteByte(text[i])
		i++
	}

	flush()
	return runs
}

// findCloser returns the index in text of the next delim occurrence
// outside any code span, or -1. An unmatched backtick opens no span and
// hides nothing.
func findCloser(text, delim string) int {
	i := 0
	for i < len(text) {
		if text[i] == '`' {
			end := strings.IndexByte(text[i+1:], '`')
			if end >= 0 {
				i += end + 2
				continue
			}
		}
		if strings.HasPrefix(text[i:], delim) {
			return i
		}
		i++
	}
	return -1
}
