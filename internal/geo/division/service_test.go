package division

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/apperr"
	"github.com/placewise/geodir/pkg/pagination"
	"github.com/placewise/geodir/pkg/pointer"
)

// fakeRepository records the arguments of the last call and replays canned rows.
type fakeRepository struct {
	lastFilter    Filter
	lastProjected ProjectedQuery
	divisions     []*Division
	rows          []fields.Row
}

func (f *fakeRepository) ListByCountry(_ context.Context, _ int64, filter Filter, _, _ int) ([]*Division, int, error) {
	f.lastFilter = filter
	return f.divisions, len(f.divisions), nil
}

func (f *fakeRepository) GetByID(_ context.Context, countryID, divisionID int64) (*Division, error) {
	for _, d := range f.divisions {
		if d.ID == divisionID && d.CountryID == countryID {
			return d, nil
		}
	}
	return nil, apperr.NotFound("Division")
}

func (f *fakeRepository) ListProjected(_ context.Context, query ProjectedQuery) ([]fields.Row, error) {
	f.lastProjected = query
	return f.rows, nil
}

func newService(repo *fakeRepository) *Service {
	return NewService(repo, slog.Default())
}

var defaultParams = pagination.Params{Page: 1, Limit: 100}

/*
TestListByCountry_FilterParsing covers the three parent_id states and the
rejection of malformed numeric filters.
*/
func TestListByCountry_FilterParsing(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawFilter
		wantErr    bool
		wantFilter Filter
	}{
		{
			name:       "no_filters",
			raw:        RawFilter{},
			wantFilter: Filter{},
		},
		{
			name:       "level_only",
			raw:        RawFilter{Level: "2"},
			wantFilter: Filter{Level: pointer.To(2)},
		},
		{
			name:       "explicit_null_parent",
			raw:        RawFilter{ParentID: "null"},
			wantFilter: Filter{Parent: ParentFilter{Set: true}},
		},
		{
			name:       "numeric_parent",
			raw:        RawFilter{ParentID: "14"},
			wantFilter: Filter{Parent: ParentFilter{Set: true, ID: pointer.To(int64(14))}},
		},
		{
			name:       "path_prefix_passthrough",
			raw:        RawFilter{PathPrefix: "np>bagmati"},
			wantFilter: Filter{PathPrefix: "np>bagmati"},
		},
		{name: "malformed_level", raw: RawFilter{Level: "abc"}, wantErr: true},
		{name: "negative_level", raw: RawFilter{Level: "-1"}, wantErr: true},
		{name: "malformed_parent", raw: RawFilter{ParentID: "x12"}, wantErr: true},
		{name: "negative_parent", raw: RawFilter{ParentID: "-5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			_, _, err := newService(repo).ListByCountry(context.Background(), 1, tt.raw, defaultParams)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFilter, repo.lastFilter)
		})
	}
}

/*
TestGet_WrongCountryIsNotFound asserts that a valid division id joined with
the wrong country id never resolves — the scoping predicates are inseparable.
*/
func TestGet_WrongCountryIsNotFound(t *testing.T) {
	repo := &fakeRepository{divisions: []*Division{
		{ID: 42, CountryID: 1, Name: "bagmati", Level: 1},
	}}
	service := newService(repo)

	found, err := service.Get(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, "bagmati", found.Name)

	_, err = service.Get(context.Background(), 2, 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestListProjected_PrefixLeniency verifies that an oversize name prefix is
silently dropped rather than rejected.
*/
func TestListProjected_PrefixLeniency(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	// Exactly at the bound: kept.
	_, err := service.ListProjected(context.Background(), ProjectedQuery{
		CountryID:  1,
		Level:      2,
		NamePrefix: "kathmanduk", // 10 chars
		Fields:     []fields.Field{fields.Name},
	})
	require.NoError(t, err)
	assert.Equal(t, "kathmanduk", repo.lastProjected.NamePrefix)

	// One past the bound: dropped, not an error.
	_, err = service.ListProjected(context.Background(), ProjectedQuery{
		CountryID:  1,
		Level:      2,
		NamePrefix: "kathmanduka", // 11 chars
		Fields:     []fields.Field{fields.Name},
	})
	require.NoError(t, err)
	assert.Empty(t, repo.lastProjected.NamePrefix)

	// The bound counts characters, not bytes: nine Devanagari characters
	// are 27 bytes but still inside the limit.
	_, err = service.ListProjected(context.Background(), ProjectedQuery{
		CountryID:  1,
		Level:      3,
		NamePrefix: "काठमाडौंश", // 9 chars
		Fields:     []fields.Field{fields.Name},
	})
	require.NoError(t, err)
	assert.Equal(t, "काठमाडौंश", repo.lastProjected.NamePrefix)
}

/*
TestListProjected_DefaultsProjection ensures the repository never receives an
empty projection.
*/
func TestListProjected_DefaultsProjection(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, err := service.ListProjected(context.Background(), ProjectedQuery{CountryID: 1, Level: 1})
	require.NoError(t, err)
	assert.Equal(t,
		[]fields.Field{fields.ID, fields.CountryID, fields.Level, fields.Name},
		repo.lastProjected.Fields,
	)
}

/*
TestListProjected_RejectsInvalidScope validates the hard bounds on level and
country id.
*/
func TestListProjected_RejectsInvalidScope(t *testing.T) {
	service := newService(&fakeRepository{})

	_, err := service.ListProjected(context.Background(), ProjectedQuery{CountryID: 1, Level: 0})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.ListProjected(context.Background(), ProjectedQuery{CountryID: 0, Level: 1})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
