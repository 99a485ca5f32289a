// Copyright (c) 2026 Geodir Authors. All rights reserved.

/*
Package fields implements the whitelist-based field projection guard for
division responses.

Callers may ask for a subset of attributes via the 'field' query parameter.
This package is the single place where those caller-supplied names cross the
trust boundary: every token is resolved against a closed enumeration mapped
to storage column names, so no other component ever forwards raw input into
a SQL projection.
*/
package fields

import (
	"github.com/placewise/geodir/internal/platform/database/schema"
	"github.com/placewise/geodir/pkg/query"
	"github.com/placewise/geodir/pkg/slice"
)

// Field is one whitelisted division attribute.
type Field string

// The closed set of projectable attributes.
const (
	ID        Field = "id"
	CountryID Field = "country_id"
	ParentID  Field = "parent_id"
	Name      Field = "name"
	NameLocal Field = "name_local"
	Code      Field = "code"
	Type      Field = "type"
	Level     Field = "level"
	Path      Field = "path"
	Timezone  Field = "timezone"
	Rest      Field = "rest"
)

// columns maps each whitelisted field to its storage column. Requests that
// name anything outside this map are dropped during [Resolve].
var columns = map[Field]string{
	ID:        schema.AdminDivision.ID,
	CountryID: schema.AdminDivision.CountryID,
	ParentID:  schema.AdminDivision.ParentID,
	Name:      schema.AdminDivision.Name,
	NameLocal: schema.AdminDivision.NameLocal,
	Code:      schema.AdminDivision.Code,
	Type:      schema.AdminDivision.Type,
	Level:     schema.AdminDivision.Level,
	Path:      schema.AdminDivision.Path,
	Timezone:  schema.AdminDivision.Timezone,
	Rest:      schema.AdminDivision.Rest,
}

// Row is one projected division record, keyed by field name.
type Row = map[string]any

// IsValid reports whether f belongs to the whitelist.
func IsValid(f Field) bool {
	_, ok := columns[f]
	return ok
}

// Resolve filters a caller-supplied comma-separated field list against the
// whitelist.
//
// Rules:
//   - Absent or empty input returns fallback unchanged.
//   - Tokens are split on commas, trimmed, and deduplicated against the
//     whitelist; unknown tokens are dropped, order is preserved.
//   - If every token was dropped, fallback is returned — an empty
//     projection would be an ambiguous "select nothing" query.
func Resolve(requested string, fallback []Field) []Field {
	tokens := query.StringSlice(requested)
	if len(tokens) == 0 {
		return fallback
	}

	valid := slice.Filter(
		slice.Map(tokens, func(t string) Field { return Field(t) }),
		IsValid,
	)

	if len(valid) == 0 {
		return fallback
	}

	return dedupe(valid)
}

// Columns maps resolved fields to their storage column names, suitable for
// direct inclusion in a SELECT list. Only whitelisted fields survive, so the
// result is injection-safe by construction.
func Columns(fs []Field) []string {
	return slice.Map(fs, func(f Field) string { return columns[f] })
}

// ForceInclude appends f to the projection unless already present.
//
// Used by endpoints that must always return a field regardless of what the
// caller asked for (city-level results always carry their extension
// attributes).
func ForceInclude(fs []Field, f Field) []Field {
	if slice.Contains(fs, f) {
		return fs
	}

	out := make([]Field, 0, len(fs)+1)
	out = append(out, fs...)
	return append(out, f)
}

// Project shapes a full division row down to the selected fields.
// Fields absent from the source row are skipped rather than emitted as null.
func Project(row Row, fs []Field) Row {
	projected := make(Row, len(fs))
	for _, f := range fs {
		if v, ok := row[string(f)]; ok {
			projected[string(f)] = v
		}
	}
	return projected
}

// dedupe removes repeated fields while keeping first-occurrence order.
func dedupe(fs []Field) []Field {
	seen := make(map[Field]struct{}, len(fs))
	out := make([]Field, 0, len(fs))
	for _, f := range fs {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
