package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates the path of an output document.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// hexColorRegex matches CSS hex colors (#rgb or #rrggbb).
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a CSS hex color such as "#1FB8CD".
func ValidateColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color %q (expected #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidImageFormats is the set of supported image export formats.
var ValidImageFormats = map[string]bool{"png": true, "svg": true, "pdf": true}

// ValidateImageFormat checks an image export format. The empty string
// means "no image export" and is accepted.
func ValidateImageFormat(format string) error {
	if format == "" || ValidImageFormats[format] {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid image format: %q (must be one of: png, svg, pdf)", format)
}
