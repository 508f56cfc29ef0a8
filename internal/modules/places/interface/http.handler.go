package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"placesWs/internal/modules/places/application/usecase"
	"placesWs/internal/modules/places/domain"
	"placesWs/internal/shared/httputil"
)

// RestaurantsResponse is the body of the restaurant listing endpoints.
type RestaurantsResponse struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Places      []domain.Place      `json:"places"`
	Count       int                 `json:"count"`
}

var placesErrors = httputil.NewErrorMapper().
	WithMapping(domain.ErrInvalidQuery, http.StatusBadRequest, domain.KindInvalidQuery, domain.UserMessage(domain.ErrInvalidQuery)).
	WithMapping(domain.ErrInvalidFilter, http.StatusBadRequest, domain.KindInvalidFilter, domain.UserMessage(domain.ErrInvalidFilter)).
	WithMapping(domain.ErrNoResultsFound, http.StatusNotFound, domain.KindNoResults, domain.UserMessage(domain.ErrNoResultsFound))

// PlacesHandler serves the read-only REST surface of the places pipeline.
type PlacesHandler struct {
	finder          usecase.RestaurantFinder
	filters         []domain.Filter
	defaultLocation string
}

func NewPlacesHandler(finder usecase.RestaurantFinder, filters []domain.Filter, defaultLocation string) *PlacesHandler {
	if len(filters) == 0 {
		filters = domain.DefaultFilters()
	}
	if strings.TrimSpace(defaultLocation) == "" {
		defaultLocation = domain.DefaultLocation
	}
	return &PlacesHandler{finder: finder, filters: filters, defaultLocation: defaultLocation}
}

// Register mounts the REST routes on g.
func (h *PlacesHandler) Register(g *echo.Group) {
	g.GET("/restaurants", h.ListRestaurants)
	g.GET("/restaurants/by-category", h.RestaurantsByCategory)
	g.GET("/filters", h.Filters)
}

// ListRestaurants searches when q is present and lists the ranked catalog otherwise.
func (h *PlacesHandler) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()
	params := c.QueryParams()

	var (
		restaurants []domain.Restaurant
		err         error
	)
	if _, hasQuery := params["q"]; hasQuery {
		location := strings.TrimSpace(params.Get("location"))
		if location == "" {
			location = h.defaultLocation
		}
		restaurants, err = h.finder.Search(ctx, params.Get("q"), location)
	} else {
		restaurants, err = h.finder.GetAll(ctx)
	}
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(http.StatusOK, newRestaurantsResponse(restaurants))
}

func (h *PlacesHandler) RestaurantsByCategory(c echo.Context) error {
	restaurants, err := h.finder.FilterByCategory(c.Request().Context(), strings.TrimSpace(c.QueryParam("category")))
	if err != nil {
		return h.fail(c, "by-category", err)
	}
	return c.JSON(http.StatusOK, newRestaurantsResponse(restaurants))
}

func (h *PlacesHandler) Filters(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"filters":       h.filters,
		"defaultFilter": domain.DefaultFilterTitle,
	})
}

func (h *PlacesHandler) fail(c echo.Context, route string, err error) error {
	info := placesErrors.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("places request failed", slog.String("route", route), slog.Int("status", info.Status), slog.Any("error", err))
	} else {
		slog.Debug("places request rejected", slog.String("route", route), slog.Int("status", info.Status), slog.String("kind", info.Kind))
	}
	return placesErrors.Respond(c, err)
}

func newRestaurantsResponse(restaurants []domain.Restaurant) RestaurantsResponse {
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return RestaurantsResponse{
		Restaurants: restaurants,
		Places:      domain.ProjectPlaces(restaurants),
		Count:       len(restaurants),
	}
}

// Health reports liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
