package common

import "strings"

const base64Marker = ";base64,"

// IsImageDataURL returns true for strings like "data:image/png;base64,iVBOR...".
func IsImageDataURL(str string) bool {
	return strings.HasPrefix(str, "data:image/") && strings.Contains(str, base64Marker)
}

// StripDataURLPrefix returns the base64 payload of a data URL. Anything else is returned as is.
func StripDataURLPrefix(str string) string {
	if !strings.HasPrefix(str, "data:") {
		return str
	}
	index := strings.Index(str, base64Marker)
	if index == -1 {
		return str
	}
	return str[index+len(base64Marker):]
}
