package country

import "context"

// Repository defines the data access contract for countries.
type Repository interface {
	List(ctx context.Context) ([]*Country, error)
	GetByID(ctx context.Context, id int64) (*Country, error)
}

// Cache fronts the country listing with a volatile store.
//
// A miss is not an error: GetList returns (nil, nil) so the service can
// fall through to the repository without branching on sentinel errors.
type Cache interface {
	GetList(ctx context.Context) ([]*Country, error)
	SetList(ctx context.Context, countries []*Country) error
}
