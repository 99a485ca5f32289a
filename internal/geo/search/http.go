package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/placewise/geodir/internal/platform/respond"
)

// Handler implements the HTTP layer for the global search endpoint. The
// country-scoped fuzzy endpoints live in internal/geo/nepal and call the
// same [Service].
type Handler struct {
	service *Service
}

// NewHandler constructs a search [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the search endpoints on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.globalSearch)
}

// globalSearch handles GET /v1/search.
func (handler *Handler) globalSearch(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	results, err := handler.service.Global(request.Context(), params.Get("q"), params.Get("country_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}
