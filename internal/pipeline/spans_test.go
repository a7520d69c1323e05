package pipeline

// Notes:
// - parseSpans: delimiter pairs resolve to styled runs, raw text kept
// - parseSpans: code spans are terminal and protect inner delimiters
// - parseSpans: unmatched delimiters are literal, never consume the line
// - parseSpans: empty spans collapse to nothing
// - parseSpans: no escaping here, special characters stay raw

import (
	"reflect"
	"testing"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// ---------------------------------------------------------------------------
// TestParseSpans - Inline Delimiter Resolution
// ---------------------------------------------------------------------------

func TestParseSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []document.Run
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text single run",
			input: "just words",
			want:  []document.Run{{Text: "just words"}},
		},
		{
			name:  "bold",
			input: "**bold**",
			want:  []document.Run{{Text: "bold", Bold: true}},
		},
		{
			name:  "italic",
			input: "*italic*",
			want:  []document.Run{{Text: "italic", Italic: true}},
		},
		{
			name:  "bold italic",
			input: "***both***",
			want:  []document.Run{{Text: "both", Bold: true, Italic: true}},
		},
		{
			name:  "code",
			input: "`x = 1`",
			want:  []document.Run{{Text: "x = 1", Code: true}},
		},
		{
			name:  "mixed sentence keeps raw specials",
			input: "Some **bold** and *italic* text with 100% & more.",
			want: []document.Run{
				{Text: "Some "},
				{Text: "bold", Bold: true},
				{Text: " and "},
				{Text: "italic", Italic: true},
				{Text: " text with 100% & more."},
			},
		},
		{
			name:  "italic nested inside bold",
			input: "**a *b* c**",
			want: []document.Run{
				{Text: "a ", Bold: true},
				{Text: "b", Bold: true, Italic: true},
				{Text: " c", Bold: true},
			},
		},
		{
			name:  "code inside bold",
			input: "**run `ls` now**",
			want: []document.Run{
				{Text: "run ", Bold: true},
				{Text: "ls", Bold: true, Code: true},
				{Text: " now", Bold: true},
			},
		},
		{
			name:  "delimiters inside code span stay literal",
			input: "`a ** b`",
			want:  []document.Run{{Text: "a ** b", Code: true}},
		},
		{
			name:  "code span inside bold protects its stars",
			input: "**a `b**c` d**",
			want: []document.Run{
				{Text: "a ", Bold: true},
				{Text: "b**c", Bold: true, Code: true},
				{Text: " d", Bold: true},
			},
		},
		{
			name:  "unmatched single star is literal",
			input: "a * b",
			want:  []document.Run{{Text: "a * b"}},
		},
		{
			name:  "unmatched trailing stars pair off and vanish",
			input: "ends with **",
			want:  []document.Run{{Text: "ends with "}},
		},
		{
			name:  "unmatched backtick is literal",
			input: "a ` b",
			want:  []document.Run{{Text: "a ` b"}},
		},
		{
			name:  "empty bold span collapses",
			input: "****",
			want:  nil,
		},
		{
			name:  "empty bold span collapses inside text",
			input: "a****b",
			want:  []document.Run{{Text: "a"}, {Text: "b"}},
		},
		{
			name:  "empty code span collapses",
			input: "``",
			want:  nil,
		},
		{
			name:  "star pair with empty inner vanishes",
			input: "a **b",
			want:  []document.Run{{Text: "a "}, {Text: "b"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseSpans(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSpans(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
