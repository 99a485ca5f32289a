package search

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/placewise/geodir/internal/geo/division"
	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/validate"
	"github.com/placewise/geodir/pkg/slice"
)

// defaultFuzzyFields is the projection applied when the caller supplies no
// usable field list.
var defaultFuzzyFields = []fields.Field{fields.ID, fields.CountryID, fields.Level, fields.Name}

// FuzzyRequest carries the validated-at-the-boundary inputs of a fuzzy
// search. Type is the raw token from the URL; the service maps it to a
// level.
type FuzzyRequest struct {
	Text      string
	Type      string
	CountryID int64
	ParentID  *int64
	RawFields string
}

// Service validates search requests and shapes results.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a search Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Global runs the bounded substring search across all divisions.
//
// rawCountryID is optional; an unparseable value is ignored rather than
// rejected, so a malformed scope widens the search instead of failing it.
func (service *Service) Global(ctx context.Context, text, rawCountryID string) ([]*division.Division, error) {
	text = strings.TrimSpace(text)
	if err := validateQueryText(text); err != nil {
		return nil, err
	}

	var countryID *int64
	if rawCountryID != "" {
		if id, err := strconv.ParseInt(rawCountryID, 10, 64); err == nil && id > 0 {
			countryID = &id
		} else {
			service.logger.DebugContext(ctx, "country_scope_ignored",
				slog.String("country_id", rawCountryID),
			)
		}
	}

	return service.repo.Global(ctx, text, countryID, GlobalLimit)
}

// Fuzzy runs the procedure-backed ranked search.
//
// The result keeps the procedure's ordering; only the projection is applied
// here. City results always carry their extension attributes even when the
// caller's field list omits them.
func (service *Service) Fuzzy(ctx context.Context, request FuzzyRequest) ([]fields.Row, error) {
	if err := validateQueryText(strings.TrimSpace(request.Text)); err != nil {
		return nil, err
	}

	level, known := TypeLevels[request.Type]
	if !known {
		return nil, validate.RequiredError("type", "Unknown division type")
	}

	projection := fields.Resolve(request.RawFields, defaultFuzzyFields)
	if request.Type == TypeCity {
		projection = fields.ForceInclude(projection, fields.Rest)
	}

	rows, err := service.repo.Fuzzy(ctx, FuzzyQuery{
		Text:      strings.TrimSpace(request.Text),
		Level:     level,
		CountryID: request.CountryID,
		ParentID:  request.ParentID,
		Limit:     ScopedLimit,
	})
	if err != nil {
		return nil, err
	}

	return slice.Map(rows, func(row fields.Row) fields.Row {
		return fields.Project(row, projection)
	}), nil
}

func validateQueryText(text string) error {
	if utf8.RuneCountInString(text) < MinQueryLen {
		return validate.RequiredError("q", "Must be at least 2 characters")
	}
	return nil
}
