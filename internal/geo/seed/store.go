package seed

import "context"

// Country is the write-side shape of a country row.
type Country struct {
	Name      string
	NameLocal string
	ISOCode   string
	Icon      string
	Structure string
	Continent string
	Timezone  string
}

// Division is the write-side shape of a division row. Path and Level are
// computed by the builder before the write; the store persists them as-is.
type Division struct {
	CountryID int64
	ParentID  *int64
	Name      string
	NameLocal *string
	Code      *string
	Type      string
	Level     int
	Path      string
	Rest      map[string]any
}

// Store defines the write contract of the hierarchy builder.
type Store interface {
	// EnsureCountry returns the id of the non-deleted country with the
	// given ISO code, creating it when absent. Calling it twice for the
	// same ISO code must yield the same id.
	EnsureCountry(ctx context.Context, country Country) (int64, error)

	// UpsertDivision inserts the division or, when a row with the same
	// (country, parent, level, name) already exists, updates it in place.
	// Returns the row id either way.
	UpsertDivision(ctx context.Context, d Division) (int64, error)
}
