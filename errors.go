package doc2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrDocxParse         = errors.New("DOCX extraction failed")
	ErrPDFParse          = errors.New("PDF extraction failed")

	// Settings validation errors.
	ErrInvalidClass    = errors.New("invalid document class")
	ErrInvalidFontSize = errors.New("invalid font size")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("listing style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
