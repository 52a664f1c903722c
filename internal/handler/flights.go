package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skyscan-flight-api/internal/apierr"
	"github.com/iliyamo/skyscan-flight-api/internal/catalog"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/search"
)

// FlightHandler serves the flight catalog and the reference data
// derived from it.
type FlightHandler struct {
	Catalog *catalog.Loader
}

func NewFlightHandler(l *catalog.Loader) *FlightHandler {
	return &FlightHandler{Catalog: l}
}

type flightsResp struct {
	Flights []model.FlightRecord `json:"flights"`
}

// List returns every flight in the catalog, flattened and unfiltered.
func (h *FlightHandler) List(c echo.Context) error {
	doc, err := h.Catalog.Flights()
	if err != nil {
		c.Logger().Errorf("flights: load catalog: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, flightsResp{Flights: search.Flatten(doc)})
}

// Search returns the flights matching the posted filter. A missing or
// empty body means no filtering. All provided criteria must match.
func (h *FlightHandler) Search(c echo.Context) error {
	var f search.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.BadRequest("invalid search filter")))
	}

	doc, err := h.Catalog.Flights()
	if err != nil {
		c.Logger().Errorf("flights: load catalog: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, flightsResp{Flights: search.Search(doc, f)})
}

// Airports returns the sorted set of airport codes that appear as
// segment endpoints in the catalog.
func (h *FlightHandler) Airports(c echo.Context) error {
	doc, err := h.Catalog.Flights()
	if err != nil {
		c.Logger().Errorf("airports: load catalog: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, search.Airports(doc))
}

// Airlines returns the static airline reference list.
func (h *FlightHandler) Airlines(c echo.Context) error {
	airlines, err := h.Catalog.Airlines()
	if err != nil {
		c.Logger().Errorf("airlines: load list: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, airlines)
}

// Services returns the static extra-service catalog.
func (h *FlightHandler) Services(c echo.Context) error {
	services, err := h.Catalog.Services()
	if err != nil {
		c.Logger().Errorf("services: load list: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, services)
}
