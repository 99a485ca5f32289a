package division

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/validate"
	"github.com/placewise/geodir/pkg/pagination"
)

// Service validates request shapes and delegates to the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a division Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListByCountry parses the raw filter set and returns the matching
// divisions plus pagination metadata.
func (service *Service) ListByCountry(ctx context.Context, countryID int64, raw RawFilter, params pagination.Params) ([]*Division, pagination.Meta, error) {
	filter, err := parseFilter(raw)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	divisions, total, err := service.repo.ListByCountry(ctx, countryID, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return divisions, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns one division scoped by country and division id jointly.
func (service *Service) Get(ctx context.Context, countryID, divisionID int64) (*Division, error) {
	return service.repo.GetByID(ctx, countryID, divisionID)
}

// ListProjected runs a level-scoped projected listing.
//
// An oversize name prefix silently drops the filter, unlike the strict
// fuzzy-search validation in internal/geo/search.
// An empty projection is replaced by the full public field set so the query
// never selects nothing.
func (service *Service) ListProjected(ctx context.Context, query ProjectedQuery) ([]fields.Row, error) {
	if err := (&validate.Validator{}).
		Custom("level", query.Level < 1, "Must be a positive depth").
		Custom("country_id", query.CountryID < 1, "Must be a valid country id").
		Err(); err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(query.NamePrefix) > MaxNamePrefixLen {
		service.logger.DebugContext(ctx, "name_prefix_ignored",
			slog.Int("length", utf8.RuneCountInString(query.NamePrefix)),
		)
		query.NamePrefix = ""
	}

	if len(query.Fields) == 0 {
		query.Fields = []fields.Field{fields.ID, fields.CountryID, fields.Level, fields.Name}
	}

	return service.repo.ListProjected(ctx, query)
}

// parseFilter validates the untrusted query-string filters.
//
// parent_id accepts the literal "null" to select root-level nodes — a
// distinct state from "no parent filter supplied".
func parseFilter(raw RawFilter) (Filter, error) {
	filter := Filter{PathPrefix: strings.TrimSpace(raw.PathPrefix)}

	if raw.Level != "" {
		level, err := strconv.Atoi(raw.Level)
		if err != nil || level < 0 {
			return Filter{}, validate.RequiredError("level", "Invalid level")
		}
		filter.Level = &level
	}

	if raw.ParentID != "" {
		filter.Parent.Set = true
		if raw.ParentID != "null" {
			parentID, err := strconv.ParseInt(raw.ParentID, 10, 64)
			if err != nil || parentID < 0 {
				return Filter{}, validate.RequiredError("parent_id", "Invalid parent_id")
			}
			filter.Parent.ID = &parentID
		}
	}

	return filter, nil
}
