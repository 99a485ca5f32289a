package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placewise/geodir/pkg/pointer"
)

// fakeStore persists countries and divisions in memory with the same
// idempotence semantics as the SQL store.
type fakeStore struct {
	countries map[string]int64
	divisions map[divisionKey]*Division
	ids       map[divisionKey]int64
	nextID    int64
}

type divisionKey struct {
	countryID int64
	parentID  int64 // 0 for nil parents, matching the coalesced index
	level     int
	name      string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		countries: make(map[string]int64),
		divisions: make(map[divisionKey]*Division),
		ids:       make(map[divisionKey]int64),
	}
}

func (f *fakeStore) EnsureCountry(_ context.Context, country Country) (int64, error) {
	if id, ok := f.countries[country.ISOCode]; ok {
		return id, nil
	}
	f.nextID++
	f.countries[country.ISOCode] = f.nextID
	return f.nextID, nil
}

func (f *fakeStore) UpsertDivision(_ context.Context, d Division) (int64, error) {
	key := divisionKey{countryID: d.CountryID, level: d.Level, name: d.Name}
	if d.ParentID != nil {
		key.parentID = *d.ParentID
	}

	if id, ok := f.ids[key]; ok {
		f.divisions[key] = &d
		return id, nil
	}

	f.nextID++
	f.ids[key] = f.nextID
	f.divisions[key] = &d
	return f.nextID, nil
}

func (f *fakeStore) find(path string) *Division {
	for _, d := range f.divisions {
		if d.Path == path {
			return d
		}
	}
	return nil
}

func kathmanduFeed() []Row {
	return []Row{
		{
			ProvinceCode: "3",
			DistrictCode: "26",
			DistrictName: "Kathmandu",
			Name:         "Kathmandu-City",
			NameNative:   "काठमाडौं",
			Type:         "Mahanagarpalika",
			Wards:        pointer.To(32),
		},
	}
}

func runBuilder(t *testing.T, store *fakeStore, rows []Row) Stats {
	t.Helper()
	stats, err := NewBuilder(store, slog.Default()).Run(context.Background(), rows)
	require.NoError(t, err)
	return stats
}

func TestRun_BuildsTopDownHierarchy(t *testing.T) {
	store := newFakeStore()
	stats := runBuilder(t, store, kathmanduFeed())

	assert.Equal(t, Stats{Provinces: 1, Districts: 1, Cities: 1}, stats)

	countryID := store.countries["NP"]
	require.NotZero(t, countryID)

	prov := store.find("np>bagmati")
	require.NotNil(t, prov)
	assert.Equal(t, 1, prov.Level)
	assert.Nil(t, prov.ParentID)
	assert.Equal(t, pointer.To("NP-P3"), prov.Code)
	assert.Equal(t, countryID, prov.CountryID)

	district := store.find("np>bagmati>kathmandu")
	require.NotNil(t, district)
	assert.Equal(t, 2, district.Level)
	assert.Equal(t, "kathmandu", district.Name)
	require.NotNil(t, district.ParentID)

	city := store.find("np>bagmati>kathmandu>kathmandu-city")
	require.NotNil(t, city)
	assert.Equal(t, 3, city.Level)
	assert.Equal(t, "kathmandu-city", city.Name)
	assert.Equal(t, pointer.To("काठमाडौं"), city.NameLocal)
	assert.Equal(t, map[string]any{"wards": 32, "admType": "Mahanagarpalika"}, city.Rest)
}

func TestRun_IsIdempotent(t *testing.T) {
	store := newFakeStore()
	runBuilder(t, store, kathmanduFeed())
	runBuilder(t, store, kathmanduFeed())

	assert.Len(t, store.countries, 1)
	assert.Len(t, store.divisions, 3)
}

func TestRun_SkipsUnknownProvince(t *testing.T) {
	store := newFakeStore()
	feed := append(kathmanduFeed(), Row{
		ProvinceCode: "99",
		DistrictCode: "1",
		DistrictName: "Nowhere",
		Name:         "Nowhere-City",
		Wards:        pointer.To(5),
	})

	stats := runBuilder(t, store, feed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Len(t, store.divisions, 3)
}

func TestRun_DistrictOnlyRowProducesNoCity(t *testing.T) {
	store := newFakeStore()
	feed := []Row{{
		ProvinceCode: "6",
		DistrictCode: "71",
		DistrictName: "Dolpa",
		Name:         "Dolpa",
		// Wards nil: district-level record only.
	}}

	stats := runBuilder(t, store, feed)
	assert.Equal(t, Stats{Provinces: 1, Districts: 1}, stats)
	assert.Nil(t, store.find("np>karnali>dolpa>dolpa"))
	assert.NotNil(t, store.find("np>karnali>dolpa"))
}
