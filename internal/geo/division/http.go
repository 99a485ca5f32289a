package division

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/placewise/geodir/internal/platform/respond"
	"github.com/placewise/geodir/internal/platform/validate"
	"github.com/placewise/geodir/pkg/pagination"
)

// Handler implements the HTTP layer for country-scoped division queries.
// It is mounted under /v1/countries/{countryID}/divisions.
type Handler struct {
	service *Service
}

// NewHandler constructs a division [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the division route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listDivisions)
	router.Get("/{divisionID}", handler.getDivision)
	return router
}

/*
GET /v1/countries/{countryID}/divisions.

Request:
  - level: int (optional depth filter)
  - parent_id: int or the literal "null" (optional; "null" selects root-level nodes)
  - path_prefix: string (optional left-anchored match on the materialized path)
  - page, limit: pagination

Response:
  - 200: paginated divisions ordered by name
  - 400: malformed country id, level, or parent_id
*/
func (handler *Handler) listDivisions(writer http.ResponseWriter, request *http.Request) {
	countryID, err := strconv.ParseInt(chi.URLParam(request, "countryID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("country_id", "Invalid country id"))
		return
	}

	raw := RawFilter{
		Level:      request.URL.Query().Get("level"),
		ParentID:   request.URL.Query().Get("parent_id"),
		PathPrefix: request.URL.Query().Get("path_prefix"),
	}

	divisions, meta, err := handler.service.ListByCountry(request.Context(), countryID, raw, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, divisions, meta)
}

/*
GET /v1/countries/{countryID}/divisions/{divisionID}.

Response:
  - 200: the division
  - 400: malformed id
  - 404: no non-deleted division with that id in that country
*/
func (handler *Handler) getDivision(writer http.ResponseWriter, request *http.Request) {
	countryID, countryErr := strconv.ParseInt(chi.URLParam(request, "countryID"), 10, 64)
	divisionID, divisionErr := strconv.ParseInt(chi.URLParam(request, "divisionID"), 10, 64)
	if countryErr != nil || divisionErr != nil {
		respond.Error(writer, request, validate.RequiredError("id", "Invalid id"))
		return
	}

	d, err := handler.service.Get(request.Context(), countryID, divisionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, d)
}
