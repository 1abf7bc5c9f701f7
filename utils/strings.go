package utils

import (
	"regexp"
	"strings"
)

// TrimName trims surrounding whitespace from a user-entered name. Names keep
// their entered casing; duplicate checks compare case-insensitively.
func TrimName(name string) string {
	return strings.TrimSpace(name)
}

// SameName compares two names case-insensitively after trimming
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
