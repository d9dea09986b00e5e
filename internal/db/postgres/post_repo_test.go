package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Search terms are matched literally: LIKE metacharacters in user input
// must not act as wildcards.
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "golang", "golang"},
		{"percent escaped", "100%", `100\%`},
		{"underscore escaped", "snake_case", `snake\_case`},
		{"backslash escaped", `C:\temp`, `C:\\temp`},
		{"backslash escaped before wildcards", `\%_`, `\\\%\_`},
		{"empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.input))
		})
	}
}
