package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stylebook/stylebook/pkg/errors"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
[document]
title = "Custom Title"
keywords = ["a", "b"]

[page]
margin = "1.5cm"
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Document.Title != "Custom Title" {
		t.Errorf("Title = %q, want %q", p.Document.Title, "Custom Title")
	}
	if len(p.Document.Keywords) != 2 {
		t.Errorf("Keywords = %v, want 2 entries", p.Document.Keywords)
	}
	if p.Page.Margin != "1.5cm" {
		t.Errorf("Margin = %q, want %q", p.Page.Margin, "1.5cm")
	}

	// Unset fields keep the defaults.
	if p.Document.Creator != Default().Document.Creator {
		t.Errorf("Creator = %q, want default %q", p.Document.Creator, Default().Document.Creator)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode errors.Code
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.toml") },
			wantCode: errors.ErrCodeFileNotFound,
		},
		{
			name:     "malformed toml",
			path:     func(t *testing.T) string { return writeProfile(t, "[document\ntitle = ") },
			wantCode: errors.ErrCodeInvalidProfile,
		},
		{
			name:     "bad length",
			path:     func(t *testing.T) string { return writeProfile(t, "[page]\nmargin = \"wide\"") },
			wantCode: errors.ErrCodeInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}
