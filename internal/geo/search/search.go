/*
Package search implements the two text-search strategies over the division
hierarchy.

Global search is a bounded substring match on name and path, ordered by
path. Fuzzy search delegates scoring to a server-side procedure and only
validates inputs, shapes the projection, and bounds the result count; it
never re-sorts what the procedure returns.
*/
package search

// Result limits. Country-scoped fuzzy endpoints return fewer rows than the
// global endpoint because they feed incremental tree navigation, not a
// standalone results page.
const (
	GlobalLimit = 20
	ScopedLimit = 8
)

// MinQueryLen is the minimum fuzzy-search text length. Shorter queries are
// rejected with a validation error, unlike the prefix filters elsewhere
// which silently drop oversize input.
const MinQueryLen = 2

// Division type tokens accepted by the fuzzy endpoints.
const (
	TypeProvince = "province"
	TypeDistrict = "district"
	TypeCity     = "city"
)

// TypeLevels maps a type token to its hierarchy depth. Tokens outside this
// map are a hard validation error, never a fallback.
var TypeLevels = map[string]int{
	TypeProvince: 1,
	TypeDistrict: 2,
	TypeCity:     3,
}
