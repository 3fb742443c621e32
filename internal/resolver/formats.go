package resolver

import (
	"path/filepath"
	"strings"
)

// supportedExtensions is the fixed allow-list of video containers accepted
// as pipeline input.
var supportedExtensions = []string{
	".mp4", ".mov", ".avi", ".webm", ".mpg", ".mpeg", ".wmv", ".flv",
}

// IsSupported reports whether the file path carries an accepted video
// extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the accepted extensions, dot-prefixed.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}
