package country

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/placewise/geodir/internal/platform/respond"
	"github.com/placewise/geodir/internal/platform/validate"
)

// Handler implements the HTTP layer for country lookups.
type Handler struct {
	service *Service
}

// NewHandler constructs a country [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the country endpoints on the given router.
// Division routes nest under /{countryID}/divisions and are mounted by the
// server, not here.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCountries)
	router.Get("/{countryID}", handler.getCountry)
}

// listCountries handles GET /v1/countries.
func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

// getCountry handles GET /v1/countries/{countryID}.
func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(request, "countryID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("country_id", "Invalid country id"))
		return
	}

	c, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}
