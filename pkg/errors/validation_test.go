package errors

import (
	"strings"
	"testing"
)

func TestValidateStyleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "Body Text", false},
		{"name with parens", "Default Style (Page)", false},
		{"name with digits", "Heading 1", false},
		{"unicode name", "Überschrift", false},
		{"empty", "", true},
		{"control character", "Body\x01Text", true},
		{"null byte", "Body\x00Text", true},
		{"tab", "Body\tText", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStyleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStyle) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidStyle)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"centimeters", "7cm", false},
		{"decimal", "0.5in", false},
		{"points", "12pt", false},
		{"millimeters", "210mm", false},
		{"empty", "", true},
		{"missing unit", "7", true},
		{"unknown unit", "7parsec", true},
		{"negative", "-1cm", true},
		{"unit only", "cm", true},
		{"spaces", "7 cm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "out.odt", false},
		{"nested path", "docs/out.odt", false},
		{"absolute path", "/tmp/out.odt", false},
		{"empty", "", true},
		{"trailing slash", "docs/", true},
		{"trailing backslash", "docs\\", true},
		{"null byte", "out\x00.odt", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestination(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDestination(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
