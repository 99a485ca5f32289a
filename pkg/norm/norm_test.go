package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Kathmandu", "kathmandu"},
		{"trims", "  bagmati  ", "bagmati"},
		{"collapses_interior_runs", "dolpo   buddha", "dolpo buddha"},
		{"keeps_single_interior_space", "Dolpo Buddha", "dolpo buddha"},
		{"devanagari_passthrough", "काठमाडौं", "काठमाडौं"},
		{"hyphenated", "Kathmandu-City", "kathmandu-city"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

// Composed and decomposed forms of the same name must normalize
// identically, or path prefix matches would silently miss.
func TestName_UnicodeComposition(t *testing.T) {
	composed := "café"         // é as one code point
	decomposed := "café"      // e + combining acute
	assert.Equal(t, Name(composed), Name(decomposed))
}
