package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs of spaces", "a\t\tb    c", "a b c"},
		{"collapse blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "line one   \nline two  ", "line one\nline two"},
		{"box noise lines", "above\n-----\nbelow", "above\n\nbelow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(reBoxNoise.ReplaceAllString(tt.in, ""))
			assert.Equal(t, tt.want, got)
		})
	}
}
