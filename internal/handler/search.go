package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ibwangi/tripsearch/internal/cache"
	"github.com/ibwangi/tripsearch/internal/filter"
	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/normalizer"
	"github.com/ibwangi/tripsearch/internal/pricegrid"
	"github.com/ibwangi/tripsearch/internal/vendors"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

type SearchHandler struct {
	vendors *vendors.Clients
	cache   cache.Cache
	rates   *currency.Provider
}

func NewSearchHandler(clients *vendors.Clients, c cache.Cache, rates *currency.Provider) *SearchHandler {
	return &SearchHandler{
		vendors: clients,
		cache:   c,
		rates:   rates,
	}
}

type SearchRequest struct {
	models.SearchContext
	Filters filter.Criteria `json:"filters"`
	ShowAll bool            `json:"show_all"`
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.SearchContext.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_search",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var (
		offers       []models.Offer
		vendorErrors []string
		cacheHit     bool
	)

	if cached, found := h.cache.Get(ctx, req.SearchContext); found {
		offers = cached
		cacheHit = true
	} else {
		amadeus, skyscanner := h.vendors.Fetch(ctx, req.SearchContext)

		normalized, err := normalizer.Normalize(req.SearchContext, amadeus, skyscanner)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_search",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}

		offers = normalized
		vendorErrors = normalizer.VendorErrors(amadeus, skyscanner)
		_ = h.cache.Set(ctx, req.SearchContext, offers)
	}

	filtered := filter.Apply(offers, req.Filters)
	view := filter.NewResultView(filtered)
	if req.ShowAll {
		view.ExpandAll()
	}
	visible := view.Visible()

	metadata := models.SearchMetadata{
		TotalResults:   view.Total(),
		VisibleResults: len(visible),
		Expanded:       view.Expanded(),
		TripType:       req.SearchContext.TripType(),
		VendorErrors:   vendorErrors,
		SearchTimeMs:   time.Since(startTime).Milliseconds(),
		CacheHit:       cacheHit,
	}
	if len(offers) > 0 {
		metadata.Provenance = offers[0].Provenance
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchContext: req.SearchContext,
		Metadata:      metadata,
		Offers:        visible,
	})
}

type GridRequest struct {
	models.SearchContext
}

// PriceGrid synthesizes the flexible-dates matrix. Cached offers feed
// the base price when present; otherwise the placeholder table renders.
func (h *SearchHandler) PriceGrid(c echo.Context) error {
	ctx := c.Request().Context()

	var req GridRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.SearchContext.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_search",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	offers, _ := h.cache.Get(ctx, req.SearchContext)
	grid := pricegrid.Build(offers, req.SearchContext, h.rates.Rate())

	return c.JSON(http.StatusOK, grid)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
