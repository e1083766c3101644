package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateStyleName validates a style or master-page name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No null bytes
//   - Maximum length of 128 characters
//
// Display names may contain spaces and parentheses ("Default Style (Page)"),
// so anything printable is accepted.
func ValidateStyleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStyle, "style name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidStyle, "style name too long (max 128 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidStyle, "style name contains invalid control characters")
		}
	}

	return nil
}

// lengthRegex matches OpenDocument positive lengths: a decimal number
// followed by a unit (cm, mm, in, pt, pc, px or em).
var lengthRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(cm|mm|in|pt|pc|px|em)$`)

// ValidateLength validates an OpenDocument length value such as "7cm" or
// "0.5in". Empty values are rejected; callers that treat empty as "unset"
// should check for that before calling.
func ValidateLength(value string) error {
	if value == "" {
		return New(ErrCodeInvalidLength, "length cannot be empty")
	}

	if !lengthRegex.MatchString(value) {
		return New(ErrCodeInvalidLength, "invalid length %q (want e.g. \"7cm\", \"12pt\")", value)
	}

	return nil
}

// ValidateDestination validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Cannot end in a path separator (must name a file, not a directory)
func ValidateDestination(path string) error {
	if path == "" {
		return New(ErrCodeInvalidDestination, "destination cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidDestination, "destination too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidDestination, "destination contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidDestination, "destination must name a file, not a directory")
	}

	return nil
}
