package main

import (
	"errors"
	"os"

	doc2tex "github.com/neslang-05/LaTeX-Convertor"
	"github.com/neslang-05/LaTeX-Convertor/internal/config"
	"github.com/neslang-05/LaTeX-Convertor/internal/dateutil"
)

// Exit codes for doc2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitExtraction = 4 // Corrupt DOCX/PDF container
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Extraction errors (exit 4)
	if errors.Is(err, doc2tex.ErrDocxParse) ||
		errors.Is(err, doc2tex.ErrPDFParse) {
		return ExitExtraction
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, doc2tex.ErrUnsupportedFormat) ||
		errors.Is(err, doc2tex.ErrInvalidClass) ||
		errors.Is(err, doc2tex.ErrInvalidFontSize) ||
		errors.Is(err, doc2tex.ErrStyleNotFound) ||
		errors.Is(err, doc2tex.ErrInvalidAssetPath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
