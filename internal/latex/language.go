package latex

import "github.com/alecthomas/chroma/v2/lexers"

// listingsNames maps canonical lexer names to the language names the
// LaTeX listings package ships definitions for. Anything outside this
// set emits an untagged listing: an unknown language= value fails the
// LaTeX compile, an untagged environment never does.
var listingsNames = map[string]string{
	"Ada":     "Ada",
	"Awk":     "Awk",
	"Bash":    "bash",
	"C":       "C",
	"C++":     "C++",
	"Erlang":  "Erlang",
	"Fortran": "Fortran",
	"Go":      "Go",
	"Haskell": "Haskell",
	"HTML":    "HTML",
	"Java":    "Java",
	"Lua":     "Lua",
	"Pascal":  "Pascal",
	"Perl":    "Perl",
	"PHP":     "PHP",
	"Prolog":  "Prolog",
	"Python":  "Python",
	"R":       "R",
	"Ruby":    "Ruby",
	"SQL":     "SQL",
	"TeX":     "TeX",
	"XML":     "XML",
}

// ListingLanguage resolves a code-fence tag to a listings language name.
// The chroma lexer registry normalizes aliases ("py" and "python3" both
// resolve to Python, "golang" to Go) before the listings lookup.
// Returns "" when the tag is empty, unknown, or resolves to a language
// listings has no definition for.
func ListingLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	lexer := lexers.Get(tag)
	if lexer == nil {
		return ""
	}
	return listingsNames[lexer.Config().Name]
}
