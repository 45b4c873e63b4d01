package common

import (
	"strings"
	"unicode/utf8"
)

// IsStringInSlice returns true if string `str` is found in `slice`.
func IsStringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if str == s {
			return true
		}
	}
	return false
}

// Truncate cuts `str` to at most `maxLength` bytes, appending "..." when something was cut. Useful for logs.
func Truncate(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}
	return strings.TrimSpace(CutAtRuneBoundary(str, maxLength)) + "..."
}

// CutAtRuneBoundary returns the longest prefix of `str` which is at most `maxLength` bytes long and doesn't split
// a UTF-8 sequence.
func CutAtRuneBoundary(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}
	end := max(maxLength, 0)
	for end > 0 && !utf8.RuneStart(str[end]) {
		end--
	}
	return str[:end]
}
