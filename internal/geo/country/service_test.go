package country

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	countries []*Country
	listCalls int
}

func (f *fakeRepository) List(context.Context) ([]*Country, error) {
	f.listCalls++
	return f.countries, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*Country, error) {
	for _, c := range f.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeCache struct {
	stored   []*Country
	getErr   error
	setErr   error
	setCalls int
}

func (f *fakeCache) GetList(context.Context) ([]*Country, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeCache) SetList(_ context.Context, countries []*Country) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = countries
	return nil
}

var nepalOnly = []*Country{{ID: 1, Name: "nepal", ISOCode: "NP"}}

func TestList_CacheMissFillsCache(t *testing.T) {
	repo := &fakeRepository{countries: nepalOnly}
	cache := &fakeCache{}
	service := NewService(repo, cache, slog.Default())

	countries, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nepalOnly, countries)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, nepalOnly, cache.stored)

	// Second read is served from cache.
	_, err = service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

func TestList_CacheFailuresFallThrough(t *testing.T) {
	repo := &fakeRepository{countries: nepalOnly}
	cache := &fakeCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	service := NewService(repo, cache, slog.Default())

	countries, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nepalOnly, countries)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, cache.setCalls)
}

func TestList_NilCache(t *testing.T) {
	repo := &fakeRepository{countries: nepalOnly}
	service := NewService(repo, nil, slog.Default())

	countries, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nepalOnly, countries)
}
