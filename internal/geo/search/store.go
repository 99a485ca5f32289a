package search

import (
	"context"

	"github.com/placewise/geodir/internal/geo/division"
	"github.com/placewise/geodir/internal/geo/fields"
)

// FuzzyQuery is the call contract of the server-side scoring procedure.
type FuzzyQuery struct {
	Text      string
	Level     int
	CountryID int64
	// ParentID selects the parent-scoped procedure variant when non-nil.
	ParentID *int64
	Limit    int
}

// Repository defines the data access contract for both search strategies.
type Repository interface {
	// Global runs a case-insensitive substring match on name and path,
	// ordered by path ascending. A nil countryID searches all countries.
	Global(ctx context.Context, text string, countryID *int64, limit int) ([]*division.Division, error)

	// Fuzzy invokes the scoring procedure and returns its rows in procedure
	// order. Rows carry the full division shape plus extension attributes;
	// projection happens in the service, not here.
	Fuzzy(ctx context.Context, query FuzzyQuery) ([]fields.Row, error)
}
