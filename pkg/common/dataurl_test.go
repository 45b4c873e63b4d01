package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDataURLPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "png data URL", input: "data:image/png;base64,iVBORw0KGgo=", want: "iVBORw0KGgo="},
		{name: "jpeg data URL", input: "data:image/jpeg;base64,/9j/4AAQ", want: "/9j/4AAQ"},
		{name: "bare base64", input: "iVBORw0KGgo=", want: "iVBORw0KGgo="},
		{name: "data URL without base64", input: "data:text/plain,hello", want: "data:text/plain,hello"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDataURLPrefix(tt.input))
		})
	}
}

func TestIsImageDataURL(t *testing.T) {
	assert.True(t, IsImageDataURL("data:image/png;base64,AAAA"))
	assert.False(t, IsImageDataURL("data:text/plain;base64,AAAA"))
	assert.False(t, IsImageDataURL("AAAA"))
}
