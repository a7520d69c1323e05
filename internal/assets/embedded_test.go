package assets

// Notes:
// - LoadStyle: every embedded style loads and contains an \lstset block
// - LoadStyle: unknown names and invalid names fail with their sentinels
// - StyleNames: lists the bundled styles in sorted order

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEmbeddedLoader_LoadStyle - Built-in Styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	names, err := loader.StyleNames()
	if err != nil {
		t.Fatalf("StyleNames() error = %v", err)
	}
	if len(names) == 0 {
		t.Fatal("StyleNames() returned no styles")
	}

	for _, name := range names {
		content, err := loader.LoadStyle(name)
		if err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
			continue
		}
		if !strings.Contains(content, `\lstset{`) {
			t.Errorf("LoadStyle(%q) missing \\lstset block", name)
		}
	}
}

func TestEmbeddedLoader_LoadStyle_Default(t *testing.T) {
	t.Parallel()

	content, err := NewEmbeddedLoader().LoadStyle("default")
	if err != nil {
		t.Fatalf("LoadStyle(default) error = %v", err)
	}
	for _, want := range []string{
		`basicstyle=\ttfamily\small`,
		`breaklines=true`,
		`frame=single`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("default style missing %q", want)
		}
	}
}

func TestEmbeddedLoader_LoadStyle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{
			name:    "unknown style",
			style:   "nonexistent",
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "empty name",
			style:   "",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "path traversal",
			style:   "../secrets",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "extension smuggling",
			style:   "default.tex",
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEmbeddedLoader().LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedLoader_StyleNames_Sorted(t *testing.T) {
	t.Parallel()

	names, err := NewEmbeddedLoader().StyleNames()
	if err != nil {
		t.Fatalf("StyleNames() error = %v", err)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("StyleNames() not sorted: %v", names)
			break
		}
	}
	for _, want := range []string{"default", "minimal"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("StyleNames() = %v, missing %q", names, want)
		}
	}
}
