// Copyright (c) 2026 Geodir Authors. All rights reserved.

// Package norm normalizes division and country names for storage and
// path construction.
//
// # Usage
//
// Every name persisted by the hierarchy builder — and therefore every
// materialized path segment — passes through [Name] so that lookups and
// prefix matches are case-insensitive by construction.
package norm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// lower performs language-neutral Unicode lowercasing; unlike
// strings.ToLower it handles locale-independent special casing consistently.
var lower = cases.Lower(language.Und)

// Name canonicalizes a division or country name.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so visually identical names compare equal.
// 2. Lowercases with Unicode case folding.
// 3. Trims surrounding whitespace and collapses internal runs to one space.
//
// Interior whitespace is preserved (as single spaces): path segments keep
// their display shape, e.g. "Dolpo Buddha" -> "dolpo buddha".
func Name(s string) string {
	s = norm.NFC.String(s)
	s = lower.String(s)
	return strings.Join(strings.Fields(s), " ")
}
