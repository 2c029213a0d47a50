package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphanumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase word", input: "userid", want: true},
		{name: "camelCase word", input: "userId", want: true},
		{name: "letters and digits", input: "1stFlrSF", want: true},
		{name: "digits only", input: "2024", want: true},
		{name: "accented letter", input: "café", want: true},
		{name: "superscript numeral", input: "x²", want: true},
		{name: "empty string", input: "", want: false},
		{name: "inner space", input: "not a valid", want: false},
		{name: "trailing space", input: "foo ", want: false},
		{name: "leading space", input: "  foo", want: false},
		{name: "underscore", input: "user_id", want: false},
		{name: "hyphen", input: "user-id", want: false},
		{name: "tab", input: "a\tb", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAlphanumeric(tt.input)
			if got != tt.want {
				t.Errorf("IsAlphanumeric(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: true},
		{name: "spaces", input: "   ", want: true},
		{name: "mixed whitespace", input: " \t\r\n", want: true},
		{name: "text", input: "a", want: false},
		{name: "padded text", input: "  a  ", want: false},
		{name: "information separators", input: "\x1c\x1d\x1e\x1f", want: true},
		{name: "no-break space", input: "\u00a0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBlank(tt.input)
			if got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii whitespace", input: " \t a b \r\n", want: "a b"},
		{name: "file separator", input: "a\x1c", want: "a"},
		{name: "unit separator both sides", input: "\x1f a \x1f", want: "a"},
		{name: "inner separator kept", input: "a\x1eb", want: "a\x1eb"},
		{name: "unicode spaces", input: "\u3000a\u2028", want: "a"},
		{name: "control that is not space", input: "\x01a", want: "\x01a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimSpace(tt.input))
		})
	}
}
