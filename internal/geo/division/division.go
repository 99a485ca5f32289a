package division

// Division is one node in a country's administrative hierarchy.
//
// ParentID is nil only for level-1 nodes. Path and Level are derived at
// write time by the hierarchy builder; the stored level stays authoritative
// for depth (see internal/geo/path).
type Division struct {
	ID        int64          `json:"id"`
	CountryID int64          `json:"country_id"`
	ParentID  *int64         `json:"parent_id"`
	Name      string         `json:"name"`
	NameLocal *string        `json:"name_local"`
	Code      *string        `json:"code"`
	Type      string         `json:"type"`
	Level     int            `json:"level"`
	Path      string         `json:"path"`
	Timezone  *string        `json:"timezone"`
	Rest      map[string]any `json:"rest"`
	IsActive  bool           `json:"is_active"`
}

// MaxNamePrefixLen bounds the name-prefix filter on listing endpoints.
// Longer prefixes silently drop the filter instead of failing.
const MaxNamePrefixLen = 10

// ParentFilter distinguishes three parent_id query states: no filter
// supplied, explicit null (root-level nodes), and an explicit id.
type ParentFilter struct {
	// Set reports whether a parent filter was supplied at all.
	Set bool
	// ID is the parent id to match; nil with Set means parent IS NULL.
	ID *int64
}

// Filter is the parsed, validated filter set for a country-scoped listing.
type Filter struct {
	Level      *int
	Parent     ParentFilter
	PathPrefix string
}

// RawFilter carries the untrusted query-string values before validation.
// ParentID may hold the literal string "null".
type RawFilter struct {
	Level      string
	ParentID   string
	PathPrefix string
}
