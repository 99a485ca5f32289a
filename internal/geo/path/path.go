// Copyright (c) 2026 Geodir Authors. All rights reserved.

/*
Package path defines the materialized-path encoding for administrative
hierarchies.

A path is the '>'-joined, lower-cased chain of names from the country's ISO
code down to a division, e.g. "np>bagmati>kathmandu>kathmandu-city". Paths
are derived state: they are computed once at write time by the hierarchy
builder and matched by prefix at read time. The stored 'level' column stays
authoritative for depth; [LevelOf] exists for integrity checks only.
*/
package path

import (
	"errors"
	"fmt"
	"strings"

	"github.com/placewise/geodir/pkg/norm"
)

// Delimiter separates path segments.
const Delimiter = ">"

// ErrInvalidName reports a path segment that is empty or contains the
// delimiter character.
var ErrInvalidName = errors.New("invalid path segment")

// Build joins the ancestor chain and the node's own name into a
// materialized path.
//
// Every segment is normalized via [norm.Name] (lower-cased, whitespace
// preserved). Returns [ErrInvalidName] if any segment normalizes to the
// empty string or contains the delimiter.
func Build(ancestors []string, self string) (string, error) {
	segments := make([]string, 0, len(ancestors)+1)

	for _, raw := range append(append([]string{}, ancestors...), self) {
		segment := norm.Name(raw)
		if segment == "" {
			return "", fmt.Errorf("%w: empty name in %q", ErrInvalidName, raw)
		}
		if strings.Contains(segment, Delimiter) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidName, segment, Delimiter)
		}
		segments = append(segments, segment)
	}

	return strings.Join(segments, Delimiter), nil
}

// LevelOf returns the depth encoded in a path: the number of segments
// after the leading country-code segment.
//
// It is a validation/debugging aid. The stored 'level' column is the
// authoritative depth; recomputing it from the path on every read would be
// wasted work.
func LevelOf(p string) int {
	if p == "" {
		return 0
	}
	return strings.Count(p, Delimiter)
}

// IsDescendant reports whether the division at path a lies strictly below
// the division at path b.
//
// This is the semantic meaning of the path_prefix query filter: A descends
// from B iff A's path starts with B's path plus the delimiter. A bare
// prefix match would wrongly treat "np>koshi2" as a descendant of
// "np>koshi".
func IsDescendant(a, b string) bool {
	return strings.HasPrefix(a, b+Delimiter)
}

// Segments splits a path into its normalized name chain.
func Segments(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, Delimiter)
}
