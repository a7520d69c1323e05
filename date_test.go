package doc2tex

import (
	"errors"
	"testing"
	"time"

	"github.com/neslang-05/LaTeX-Convertor/internal/dateutil"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	// Fixed time for deterministic tests: 2026-03-07
	fixedTime := time.Date(2026, 3, 7, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "literal date passthrough",
			value: "2026-01-01",
			want:  "2026-01-01",
		},
		{
			name:  "empty string passthrough",
			value: "",
			want:  "",
		},
		{
			name:  "auto uses default ISO format",
			value: "auto",
			want:  "2026-03-07",
		},
		{
			name:  "auto with custom format",
			value: "auto:DD/MM/YYYY",
			want:  "07/03/2026",
		},
		{
			name:  "auto with long preset",
			value: "auto:long",
			want:  "March 7, 2026",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestResolveDate_InvalidSyntax(t *testing.T) {
	t.Parallel()

	_, err := ResolveDate("auto:", time.Now())
	if !errors.Is(err, dateutil.ErrInvalidDateFormat) {
		t.Errorf("ResolveDate() error = %v, want %v", err, dateutil.ErrInvalidDateFormat)
	}
}
