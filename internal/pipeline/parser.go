package pipeline

import (
	"context"

	"github.com/neslang-05/LaTeX-Convertor/internal/document"
)

// Parser turns one input format into a block sequence.
//
// Parsers are lenient: structurally malformed content degrades to
// best-effort paragraphs instead of failing. An error comes back only
// when the container itself cannot be decoded (a broken DOCX archive or
// PDF) or the context is done.
type Parser interface {
	Parse(ctx context.Context, source []byte) ([]document.Block, error)
}
