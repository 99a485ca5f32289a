// Copyright (c) 2026 Geodir Authors. All rights reserved.

package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placewise/geodir/internal/geo/fields"
)

var fallback = []fields.Field{fields.ID, fields.CountryID, fields.Level, fields.Name}

/*
TestResolve covers the projection guard's trust-boundary rules: fallback on
empty or fully-invalid input, silent dropping of unknown tokens, and
preserved order.
*/
func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      []fields.Field
	}{
		{"absent_returns_fallback", "", fallback},
		{"whitespace_only_returns_fallback", "  ,  , ", fallback},
		{"all_invalid_returns_fallback", "bogus,worse", fallback},
		{"drops_invalid_keeps_order", "name,level,bogus", []fields.Field{fields.Name, fields.Level}},
		{"trims_tokens", " name , path ", []fields.Field{fields.Name, fields.Path}},
		{"deduplicates", "name,name,level", []fields.Field{fields.Name, fields.Level}},
		{"full_whitelist_token", "rest", []fields.Field{fields.Rest}},
		{"rejects_sql_injection_shape", "name;drop table admin_divisions,level", []fields.Field{fields.Level}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.Resolve(tt.requested, fallback))
		})
	}
}

/*
TestColumns verifies that resolved fields map onto storage column names.
*/
func TestColumns(t *testing.T) {
	cols := fields.Columns([]fields.Field{fields.ID, fields.NameLocal, fields.Rest})
	assert.Equal(t, []string{"id", "name_local", "rest"}, cols)
}

/*
TestForceInclude checks the fixed augmentation used by city-level endpoints.
*/
func TestForceInclude(t *testing.T) {
	// Appended when missing.
	augmented := fields.ForceInclude([]fields.Field{fields.ID, fields.Name}, fields.Rest)
	assert.Equal(t, []fields.Field{fields.ID, fields.Name, fields.Rest}, augmented)

	// No duplicate when already requested.
	same := fields.ForceInclude(augmented, fields.Rest)
	assert.Equal(t, augmented, same)
}

/*
TestProject shapes a full row down to the selected fields and skips fields
the source row does not carry.
*/
func TestProject(t *testing.T) {
	row := fields.Row{
		"id":         int64(7),
		"name":       "kathmandu",
		"level":      2,
		"path":       "np>bagmati>kathmandu",
		"is_deleted": false, // never whitelisted
	}

	projected := fields.Project(row, []fields.Field{fields.Name, fields.Level, fields.Rest})

	assert.Equal(t, fields.Row{"name": "kathmandu", "level": 2}, projected)
	assert.NotContains(t, projected, "is_deleted")
	assert.NotContains(t, projected, "id")
}
