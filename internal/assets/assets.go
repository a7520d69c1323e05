package assets

// DefaultStyleName is the listing style applied when no style is
// requested.
const DefaultStyleName = "default"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in listing style by name using the default
// embedded loader. The name should not include the .tex extension or
// path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the built-in listing style names.
func StyleNames() ([]string, error) {
	return defaultLoader.StyleNames()
}
