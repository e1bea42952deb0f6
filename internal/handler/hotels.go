package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ibwangi/tripsearch/internal/airports"
	"github.com/ibwangi/tripsearch/internal/hotels"
	"github.com/ibwangi/tripsearch/internal/models"
)

type HotelsHandler struct{}

func NewHotelsHandler() *HotelsHandler {
	return &HotelsHandler{}
}

func (h *HotelsHandler) List(c echo.Context) error {
	min := parsePrice(c.QueryParam("min_price"))
	max := parsePrice(c.QueryParam("max_price"))

	list := hotels.FilterByPrice(hotels.Catalog(), min, max)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":  len(list),
		"hotels": list,
	})
}

func (h *HotelsHandler) Get(c echo.Context) error {
	hotel, ok := hotels.ByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "no hotel with id " + c.Param("id"),
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"hotel":  hotel,
		"others": hotels.Others(hotel.ID),
	})
}

// Cities answers airport/city typeahead queries from the static
// Nigerian table.
func (h *HotelsHandler) Cities(c echo.Context) error {
	query := c.QueryParam("query")
	results := airports.Search(query)
	if results == nil {
		results = []airports.City{}
	}
	return c.JSON(http.StatusOK, results)
}

func parsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
