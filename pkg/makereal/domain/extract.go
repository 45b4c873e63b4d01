package domain

import "strings"

const (
	htmlStartMarker = "<!DOCTYPE html>"
	htmlEndMarker   = "</html>"
)

// ExtractHTML cuts the HTML document out of the model's response: everything from "<!DOCTYPE html>" up to and
// including "</html>". Whatever the model says before or after is dropped. The HTML itself is not validated.
func ExtractHTML(response string) (string, error) {
	start := strings.Index(response, htmlStartMarker)
	end := strings.Index(response, htmlEndMarker)
	if start == -1 || end == -1 {
		return "", ErrHTMLNotFound
	}
	end += len(htmlEndMarker)
	if end < start+len(htmlStartMarker) {
		return "", ErrHTMLNotFound
	}
	return response[start:end], nil
}
