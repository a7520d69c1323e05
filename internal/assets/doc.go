// Package assets provides the listing styles bundled with the
// converter: \lstset blocks that configure how code listings typeset.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader the converter uses. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader when the style
// is not found there. This lets a user override one style while keeping
// the built-in ones available.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.tex           # one \lstset block per style
//
// # Security
//
// Style names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within
// basePath.
package assets
