/*
Package nepal exposes the country-fixed convenience endpoints for Nepal's
administrative hierarchy. Each route pins the country id and a hierarchy
level, leaving the caller only a parent id, an optional name prefix, and an
optional projection.
*/
package nepal

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/placewise/geodir/internal/geo/division"
	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/geo/search"
	"github.com/placewise/geodir/internal/platform/respond"
	"github.com/placewise/geodir/internal/platform/validate"
)

// Default projections per level. Provinces carry their code (NP-P1..NP-P7)
// since callers key UI elements off it; deeper levels do not.
var (
	provinceFields = []fields.Field{fields.ID, fields.CountryID, fields.Code, fields.Level, fields.Name}
	childFields    = []fields.Field{fields.ID, fields.CountryID, fields.Level, fields.Name}
)

// Handler implements the HTTP layer for the Nepal-scoped endpoints.
type Handler struct {
	divisions *division.Service
	searcher  *search.Service
	countryID int64
}

// NewHandler constructs a Nepal [Handler]. countryID is the configured row
// id of Nepal in the countries table.
func NewHandler(divisions *division.Service, searcher *search.Service, countryID int64) *Handler {
	return &Handler{
		divisions: divisions,
		searcher:  searcher,
		countryID: countryID,
	}
}

// RegisterRoutes mounts the Nepal endpoints on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/province", handler.listProvinces)
	router.Get("/district/{parentID}", handler.listDistricts)
	router.Get("/city/{parentID}", handler.listCities)
	router.Get("/search/{divisionType}", handler.fuzzySearch)
	router.Get("/search/{divisionType}/{parentID}", handler.fuzzySearch)
}

// listProvinces handles GET /v1/np/province. Provinces are few, so the
// listing is unbounded.
func (handler *Handler) listProvinces(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	rows, err := handler.divisions.ListProjected(request.Context(), division.ProjectedQuery{
		CountryID:  handler.countryID,
		Level:      1,
		NamePrefix: params.Get("search"),
		Fields:     fields.Resolve(params.Get("field"), provinceFields),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rows)
}

// listDistricts handles GET /v1/np/district/{parentID}.
func (handler *Handler) listDistricts(writer http.ResponseWriter, request *http.Request) {
	handler.listChildren(writer, request, 2, false)
}

// listCities handles GET /v1/np/city/{parentID}. City rows always include
// their extension attributes (ward counts and the source admin type).
func (handler *Handler) listCities(writer http.ResponseWriter, request *http.Request) {
	handler.listChildren(writer, request, 3, true)
}

func (handler *Handler) listChildren(writer http.ResponseWriter, request *http.Request, level int, includeRest bool) {
	parentID, err := strconv.ParseInt(chi.URLParam(request, "parentID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("parent_id", "Invalid parent id"))
		return
	}

	params := request.URL.Query()
	projection := fields.Resolve(params.Get("field"), childFields)
	if includeRest {
		projection = fields.ForceInclude(projection, fields.Rest)
	}

	rows, err := handler.divisions.ListProjected(request.Context(), division.ProjectedQuery{
		CountryID:  handler.countryID,
		Level:      level,
		ParentID:   &parentID,
		NamePrefix: params.Get("search"),
		Fields:     projection,
		Limit:      search.ScopedLimit,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rows)
}

// fuzzySearch handles GET /v1/np/search/{divisionType} and its parent-scoped
// variant GET /v1/np/search/{divisionType}/{parentID}.
func (handler *Handler) fuzzySearch(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	fuzzyRequest := search.FuzzyRequest{
		Text:      params.Get("q"),
		Type:      chi.URLParam(request, "divisionType"),
		CountryID: handler.countryID,
		RawFields: params.Get("field"),
	}

	if raw := chi.URLParam(request, "parentID"); raw != "" {
		parentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("parent_id", "Invalid parent id"))
			return
		}
		fuzzyRequest.ParentID = &parentID
	}

	rows, err := handler.searcher.Fuzzy(request.Context(), fuzzyRequest)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rows)
}
