package country

import (
	"context"
	"log/slog"
)

// Service exposes country read operations with a read-through cache in
// front of the repository.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a country Service. cache may be nil, in which case
// every read goes straight to the repository.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns all non-deleted countries ordered by name. Inactive
// countries stay in the listing with IsActive false.
//
// Cache failures are logged and swallowed: the catalogue must stay
// available when Redis is down.
func (service *Service) List(ctx context.Context) ([]*Country, error) {
	if service.cache != nil {
		cached, err := service.cache.GetList(ctx)
		if err != nil {
			service.logger.WarnContext(ctx, "country_cache_read_failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	countries, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.SetList(ctx, countries); err != nil {
			service.logger.WarnContext(ctx, "country_cache_write_failed", slog.Any("error", err))
		}
	}

	return countries, nil
}

// Get returns one country by id, NotFound if absent or soft-deleted.
func (service *Service) Get(ctx context.Context, id int64) (*Country, error) {
	return service.repo.GetByID(ctx, id)
}
