package division

import (
	"context"

	"github.com/placewise/geodir/internal/geo/fields"
)

// ProjectedQuery describes a level-scoped, optionally parent-scoped fetch
// returning only the projected fields. It backs incremental tree navigation
// ("list districts under province 14").
type ProjectedQuery struct {
	CountryID int64
	Level     int
	// ParentID constrains children to one parent; nil means no parent
	// constraint (used for level-1 listings).
	ParentID *int64
	// NamePrefix left-anchors a case-insensitive match on name. The service
	// drops it when longer than [MaxNamePrefixLen].
	NamePrefix string
	// Fields is the resolved projection; never empty (the guard guarantees
	// a fallback).
	Fields []fields.Field
	// Limit bounds the result set; 0 means unbounded.
	Limit int
}

// Repository defines the data access contract for divisions.
//
// Every implementation must re-apply the is_deleted = false predicate on
// every query; no caller is trusted to remember it.
type Repository interface {
	// ListByCountry returns divisions matching the filter, ordered by name
	// ascending, plus the total row count before pagination.
	ListByCountry(ctx context.Context, countryID int64, filter Filter, limit, offset int) ([]*Division, int, error)

	// GetByID fetches one division scoped by BOTH ids jointly. Returning a
	// division that belongs to a different country for a matching id would
	// be a data leak, so the two predicates are never separated.
	GetByID(ctx context.Context, countryID, divisionID int64) (*Division, error)

	// ListProjected executes a projected, level-scoped fetch ordered by
	// name ascending.
	ListProjected(ctx context.Context, query ProjectedQuery) ([]fields.Row, error)
}
