package latex

import (
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// headingCommands maps heading levels to sectioning commands. Levels
// past the deepest command reuse it instead of failing.
var headingCommands = []string{
	1: "section",
	2: "subsection",
	3: "subsubsection",
	4: "paragraph",
	5: "subparagraph",
}

// Emit serializes a block sequence into a complete LaTeX document:
// preamble, \begin{document}, \maketitle when titled, one emission per
// block separated by blank lines, \end{document}. The only mutable walk
// state is the list nesting depth, scoped to this call. Running Emit
// twice on the same inputs yields byte-identical output.
func Emit(blocks []document.Block, pre *Preamble) string {
	var sb strings.Builder

	sb.WriteString(pre.Build())
	sb.WriteString("\\begin{document}\n")
	if pre.Title != "" {
		sb.WriteString("\n\\maketitle\n")
	}

	for _, b := range blocks {
		sb.WriteString("\n")
		writeBlock(&sb, b)
		sb.WriteString("\n")
	}

	sb.WriteString("\\end{document}\n")
	return sb.String()
}

func writeBlock(sb *strings.Builder, b document.Block) {
	switch v := b.(type) {
	case document.Heading:
		writeHeading(sb, v)
	case document.Paragraph:
		sb.WriteString(RenderRuns(v.Text))
	case document.List:
		writeList(sb, v, 0)
	case document.Table:
		writeTable(sb, v)
	case document.CodeBlock:
		writeCodeBlock(sb, v)
	}
}

func writeHeading(sb *strings.Builder, h document.Heading) {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level >= len(headingCommands) {
		level = len(headingCommands) - 1
	}

	sb.WriteString(`\`)
	sb.WriteString(headingCommands[level])
	sb.WriteString(`{`)
	sb.WriteString(RenderRuns(h.Text))
	sb.WriteString(`}`)
}

// writeList emits a list environment. depth is the nesting level and
// only controls indentation; children recurse with depth+1 so closings
// balance openings in reverse order.
func writeList(sb *strings.Builder, l document.List, depth int) {
	indent := strings.Repeat("  ", depth)
	env := "itemize"
	if l.Ordered {
		env = "enumerate"
	}

	sb.WriteString(indent)
	sb.WriteString(`\begin{`)
	sb.WriteString(env)
	sb.WriteString("}\n")

	for _, item := range l.Items {
		sb.WriteString(indent)
		sb.WriteString(`  \item`)
		if content := RenderRuns(item.Content); content != "" {
			sb.WriteString(" ")
			sb.WriteString(content)
		}
		sb.WriteString("\n")
		if item.Children != nil {
			writeList(sb, *item.Children, depth+1)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(indent)
	sb.WriteString(`\end{`)
	sb.WriteString(env)
	sb.WriteString(`}`)
}

// writeTable sizes the tabular to the widest row and right-pads shorter
// rows with empty cells. Borders come from booktabs rules, not drawn
// lines; a rows-only rule separates the first row when more follow.
func writeTable(sb *strings.Builder, t document.Table) {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return
	}

	sb.WriteString("\\begin{table}[H]\n")
	sb.WriteString("\\centering\n")
	sb.WriteString(`\begin{tabular}{`)
	sb.WriteString(strings.Repeat("l", width))
	sb.WriteString("}\n")
	sb.WriteString("\\toprule\n")

	for i, row := range t.Rows {
		if i == 1 {
			sb.WriteString("\\midrule\n")
		}
		cells := make([]string, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				cells[j] = RenderRuns(row[j])
			}
		}
		sb.WriteString(strings.Join(cells, " & "))
		sb.WriteString(" \\\\\n")
	}

	sb.WriteString("\\bottomrule\n")
	sb.WriteString("\\end{tabular}\n")
	sb.WriteString(`\end{table}`)
}

func writeCodeBlock(sb *strings.Builder, c document.CodeBlock) {
	sb.WriteString(`\begin{lstlisting}`)
	if lang := ListingLanguage(c.Language); lang != "" {
		sb.WriteString(`[language=`)
		sb.WriteString(lang)
		sb.WriteString(`]`)
	}
	sb.WriteString("\n")

	if c.Raw != "" {
		sb.WriteString(c.Raw)
		if !strings.HasSuffix(c.Raw, "\n") {
			sb.WriteString("\n")
		}
	}

	sb.WriteString(`\end{lstlisting}`)
}
