package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placewise/geodir/internal/geo/division"
	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/apperr"
)

type fakeRepository struct {
	lastText      string
	lastCountryID *int64
	lastFuzzy     FuzzyQuery
	rows          []fields.Row
}

func (f *fakeRepository) Global(_ context.Context, text string, countryID *int64, _ int) ([]*division.Division, error) {
	f.lastText = text
	f.lastCountryID = countryID
	return nil, nil
}

func (f *fakeRepository) Fuzzy(_ context.Context, query FuzzyQuery) ([]fields.Row, error) {
	f.lastFuzzy = query
	return f.rows, nil
}

func newService(repo *fakeRepository) *Service {
	return NewService(repo, slog.Default())
}

func TestGlobal_QueryLength(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, err := service.Global(context.Background(), "k", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Global(context.Background(), "ka", "")
	require.NoError(t, err)
	assert.Equal(t, "ka", repo.lastText)
}

// The minimum length is counted in characters, not bytes: a single
// Devanagari letter is three bytes but still one character short.
func TestGlobal_QueryLengthCountsRunes(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, err := service.Global(context.Background(), "क", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Global(context.Background(), "का", "")
	require.NoError(t, err)
	assert.Equal(t, "का", repo.lastText)
}

func TestGlobal_CountryScopeIsLenient(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, err := service.Global(context.Background(), "kath", "7")
	require.NoError(t, err)
	require.NotNil(t, repo.lastCountryID)
	assert.Equal(t, int64(7), *repo.lastCountryID)

	// An unparseable scope widens the search instead of failing it.
	_, err = service.Global(context.Background(), "kath", "not-a-number")
	require.NoError(t, err)
	assert.Nil(t, repo.lastCountryID)
}

func TestFuzzy_Validation(t *testing.T) {
	service := newService(&fakeRepository{})

	_, err := service.Fuzzy(context.Background(), FuzzyRequest{Text: "k", Type: TypeDistrict, CountryID: 1})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Fuzzy(context.Background(), FuzzyRequest{Text: "ka", Type: "ward", CountryID: 1})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// One Devanagari character is one character, not three.
	_, err = service.Fuzzy(context.Background(), FuzzyRequest{Text: "क", Type: TypeDistrict, CountryID: 1})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestFuzzy_TypeMapsToLevel(t *testing.T) {
	tests := []struct {
		divType   string
		wantLevel int
	}{
		{TypeProvince, 1},
		{TypeDistrict, 2},
		{TypeCity, 3},
	}

	for _, tt := range tests {
		t.Run(tt.divType, func(t *testing.T) {
			repo := &fakeRepository{}
			_, err := newService(repo).Fuzzy(context.Background(), FuzzyRequest{
				Text: "kath", Type: tt.divType, CountryID: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, repo.lastFuzzy.Level)
			assert.Equal(t, ScopedLimit, repo.lastFuzzy.Limit)
		})
	}
}

func TestFuzzy_ProjectionShapesRows(t *testing.T) {
	repo := &fakeRepository{rows: []fields.Row{
		{"id": int64(9), "country_id": int64(1), "level": 2, "name": "kathmandu", "path": "np>bagmati>kathmandu", "rest": nil},
	}}
	service := newService(repo)

	rows, err := service.Fuzzy(context.Background(), FuzzyRequest{
		Text: "kath", Type: TypeDistrict, CountryID: 1, RawFields: "name,level",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fields.Row{"name": "kathmandu", "level": 2}, rows[0])
}

func TestFuzzy_CityForcesExtensionAttributes(t *testing.T) {
	rest := map[string]any{"wards": float64(32)}
	repo := &fakeRepository{rows: []fields.Row{
		{"id": int64(3), "name": "kathmandu-city", "level": 3, "rest": rest},
	}}
	service := newService(repo)

	rows, err := service.Fuzzy(context.Background(), FuzzyRequest{
		Text: "kath", Type: TypeCity, CountryID: 1, RawFields: "name",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fields.Row{"name": "kathmandu-city", "rest": rest}, rows[0])
}

// TestFuzzy_KeepsProcedureOrder asserts the service never re-sorts what the
// scoring procedure returned.
func TestFuzzy_KeepsProcedureOrder(t *testing.T) {
	repo := &fakeRepository{rows: []fields.Row{
		{"name": "zebra", "level": 2},
		{"name": "alpha", "level": 2},
	}}
	service := newService(repo)

	rows, err := service.Fuzzy(context.Background(), FuzzyRequest{
		Text: "ab", Type: TypeDistrict, CountryID: 1, RawFields: "name",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "zebra", rows[0]["name"])
	assert.Equal(t, "alpha", rows[1]["name"])
}
