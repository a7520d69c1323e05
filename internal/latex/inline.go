package latex

import (
	"strings"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// RenderRuns serializes a run sequence to inline LaTeX. Each run's text
// is escaped first, then wrapped in its style commands. That order is
// the load-bearing rule of the whole emitter: wrapping before escaping
// would mangle the command tokens themselves, so no API exists that
// wraps pre-escaped text or escapes wrapped text.
func RenderRuns(runs []document.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(renderRun(r))
	}
	return sb.String()
}

// renderRun wraps one escaped run. Code binds innermost, then bold,
// then italic, so a bold+italic run nests as \textit{\textbf{…}}.
func renderRun(r document.Run) string {
	out := Escape(r.Text)
	if r.Code {
		out = `\texttt{` + out + `}`
	}
	if r.Bold {
		out = `\textbf{` + out + `}`
	}
	if r.Italic {
		out = `\textit{` + out + `}`
	}
	return out
}
