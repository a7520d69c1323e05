package latex

// Notes:
// - Escape: each special character maps to its replacement
// - Escape: substitution is single-pass, emitted backslashes survive
// - Escape: plain and non-ASCII text passes through untouched

import "testing"

// ---------------------------------------------------------------------------
// TestEscape - Special Character Substitution
// ---------------------------------------------------------------------------

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "ampersand",
			input: "salt & pepper",
			want:  `salt \& pepper`,
		},
		{
			name:  "percent",
			input: "50% of users",
			want:  `50\% of users`,
		},
		{
			name:  "dollar",
			input: "$5",
			want:  `\$5`,
		},
		{
			name:  "hash",
			input: "#1",
			want:  `\#1`,
		},
		{
			name:  "underscore",
			input: "snake_case",
			want:  `snake\_case`,
		},
		{
			name:  "braces",
			input: "{x}",
			want:  `\{x\}`,
		},
		{
			name:  "tilde",
			input: "~/bin",
			want:  `\textasciitilde{}/bin`,
		},
		{
			name:  "caret",
			input: "x^2",
			want:  `x\^{}2`,
		},
		{
			name:  "backslash",
			input: `a\b`,
			want:  `a\textbackslash{}b`,
		},
		{
			name:  "every special once",
			input: `& % $ # _ { } ~ ^ \`,
			want:  `\& \% \$ \# \_ \{ \} \textasciitilde{} \^{} \textbackslash{}`,
		},
		{
			name:  "backslash before special is not rescanned",
			input: `\&`,
			want:  `\textbackslash{}\&`,
		},
		{
			name:  "repeated specials",
			input: "100%%",
			want:  `100\%\%`,
		},
		{
			name:  "unicode untouched",
			input: "héllo wörld",
			want:  "héllo wörld",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
