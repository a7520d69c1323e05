package pipeline

// Notes:
// - Parse: an unreadable PDF is the only hard failure; reflow behavior
//   is covered by the shared paragraph tests in text_test.go

import (
	"context"
	"errors"
	"testing"

	"github.com/neslang-05/LaTeX-Convertor/internal/extract"
)

func TestPDFParser_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewPDFParser().Parse(context.Background(), []byte("not a pdf"))
	if !errors.Is(err, extract.ErrPDFRead) {
		t.Errorf("Parse() error = %v, want ErrPDFRead", err)
	}
}

func TestPDFParser_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPDFParser().Parse(ctx, nil)
	if err != context.Canceled {
		t.Errorf("Parse() error = %v, want context.Canceled", err)
	}
}
