// Package latex renders the document block model into LaTeX source:
// character escaping, inline style wrapping, preamble assembly, and the
// block emitter. Every function here is pure and deterministic; the same
// inputs always produce byte-identical output.
package latex

import "strings"

// escaper substitutes the ten LaTeX-special characters in a single pass
// over the original text. A single pass matters: the backslashes
// introduced by one substitution must never be re-escaped by another,
// which chained find-replace passes would do.
var escaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`\`, `\textbackslash{}`,
)

// Escape makes a raw text segment safe for LaTeX. It is total and must
// be applied exactly once per segment; callers never escape twice.
func Escape(text string) string {
	return escaper.Replace(text)
}
