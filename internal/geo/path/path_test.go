// Copyright (c) 2026 Geodir Authors. All rights reserved.

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placewise/geodir/internal/geo/path"
)

/*
TestBuild verifies path construction from an ancestor chain.
*/
func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		ancestors []string
		self      string
		want      string
		wantErr   bool
	}{
		{"country_root", nil, "np", "np", false},
		{"province", []string{"np"}, "bagmati", "np>bagmati", false},
		{"city_chain", []string{"np", "bagmati", "kathmandu"}, "kathmandu-city", "np>bagmati>kathmandu>kathmandu-city", false},
		{"lowercases_segments", []string{"NP", "Bagmati"}, "Kathmandu", "np>bagmati>kathmandu", false},
		{"preserves_interior_space", []string{"np", "karnali"}, "Dolpo Buddha", "np>karnali>dolpo buddha", false},
		{"empty_self", []string{"np"}, "", "", true},
		{"blank_ancestor", []string{"np", "   "}, "kathmandu", "", true},
		{"delimiter_in_name", []string{"np"}, "bag>mati", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := path.Build(tt.ancestors, tt.self)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, path.ErrInvalidName)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestLevelOf checks that the depth derived from a path matches the stored level
convention (segments after the country code).
*/
func TestLevelOf(t *testing.T) {
	assert.Equal(t, 0, path.LevelOf(""))
	assert.Equal(t, 0, path.LevelOf("np"))
	assert.Equal(t, 1, path.LevelOf("np>bagmati"))
	assert.Equal(t, 2, path.LevelOf("np>bagmati>kathmandu"))
	assert.Equal(t, 3, path.LevelOf("np>bagmati>kathmandu>kathmandu-city"))
}

/*
TestIsDescendant covers strict prefix containment, including the sibling
false-positive a naive prefix match would produce.
*/
func TestIsDescendant(t *testing.T) {
	assert.True(t, path.IsDescendant("np>bagmati>kathmandu", "np>bagmati"))
	assert.True(t, path.IsDescendant("np>bagmati", "np"))

	// A node is not its own descendant.
	assert.False(t, path.IsDescendant("np>bagmati", "np>bagmati"))

	// Sibling with a common name prefix is not a descendant.
	assert.False(t, path.IsDescendant("np>koshi2", "np>koshi"))
}

/*
TestSegments verifies the round trip between Build and Segments.
*/
func TestSegments(t *testing.T) {
	p, err := path.Build([]string{"np", "bagmati"}, "kathmandu")
	require.NoError(t, err)

	assert.Equal(t, []string{"np", "bagmati", "kathmandu"}, path.Segments(p))
	assert.Nil(t, path.Segments(""))
}
