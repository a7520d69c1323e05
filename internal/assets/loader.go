package assets

// AssetLoader defines the contract for loading listing styles.
// Implementations may load from embedded assets, the filesystem, or a
// combination of both.
type AssetLoader interface {
	// LoadStyle loads a listing style by name (without .tex extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// StyleNames lists the style names this loader can serve, sorted.
	StyleNames() ([]string, error)
}
