package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/selection"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

// SelectionHandler exposes the pick state machine statelessly: the
// client sends its current state plus the clicked offer and receives the
// next state. Server-side session storage would be booking persistence,
// which this service does not do.
type SelectionHandler struct {
	rates *currency.Provider
}

func NewSelectionHandler(rates *currency.Provider) *SelectionHandler {
	return &SelectionHandler{rates: rates}
}

type SelectRequest struct {
	State    selection.State `json:"state"`
	Offer    models.Offer    `json:"offer"`
	TripType models.TripType `json:"trip_type"`
}

type SelectResponse struct {
	State          selection.State `json:"state"`
	Complete       bool            `json:"complete"`
	TotalNGN       float64         `json:"total_ngn"`
	TotalFormatted string          `json:"total_formatted"`
}

func (h *SelectionHandler) Select(c echo.Context) error {
	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if req.TripType == "" {
		req.TripType = models.TripOneWay
	}

	next := selection.Select(req.State, req.Offer, req.TripType)
	rate := h.rates.Rate()
	total := selection.ComputeTotal(next, rate)

	return c.JSON(http.StatusOK, SelectResponse{
		State:          next,
		Complete:       next.Complete(req.TripType),
		TotalNGN:       total,
		TotalFormatted: currency.FormatNaira(total),
	})
}

type TotalRequest struct {
	State selection.State `json:"state"`
}

func (h *SelectionHandler) Total(c echo.Context) error {
	var req TotalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	rate := h.rates.Rate()
	total := selection.ComputeTotal(req.State, rate)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_ngn":       total,
		"total_formatted": currency.FormatNaira(total),
		"rate":            rate,
	})
}

type RateHandler struct {
	rates *currency.Provider
}

func NewRateHandler(rates *currency.Provider) *RateHandler {
	return &RateHandler{rates: rates}
}

func (h *RateHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]float64{"usd_to_ngn": h.rates.Rate()})
}

type RateUpdateRequest struct {
	Rate float64 `json:"rate"`
}

func (h *RateHandler) Update(c echo.Context) error {
	var req RateUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if !h.rates.Update(req.Rate) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_rate",
			Message: "rate must be a positive number",
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, map[string]float64{"usd_to_ngn": h.rates.Rate()})
}
