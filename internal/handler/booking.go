package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibwangi/tripsearch/internal/booking"
	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/selection"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

type BookingHandler struct {
	rates *currency.Provider
}

func NewBookingHandler(rates *currency.Provider) *BookingHandler {
	return &BookingHandler{rates: rates}
}

type BookingRequest struct {
	Passenger        booking.Passenger        `json:"passenger"`
	EmergencyContact booking.EmergencyContact `json:"emergency_contact"`
	Selection        selection.State          `json:"selection"`
	TripType         models.TripType          `json:"trip_type"`
	CheckedBags      int                      `json:"checked_bags"`
}

func (h *BookingHandler) Create(c echo.Context) error {
	req, ok := h.bindBooking(c)
	if !ok {
		return nil
	}

	b, err := booking.New(req.Passenger, req.EmergencyContact, req.Selection,
		req.TripType, req.CheckedBags, h.rates.Rate())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid_booking",
			Message: err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
	}

	return c.JSON(http.StatusCreated, b)
}

// Itinerary builds the booking from the submitted payload and streams
// the PDF summary. Bookings are session-scoped, so the client re-sends
// the payload rather than referencing stored state.
func (h *BookingHandler) Itinerary(c echo.Context) error {
	req, ok := h.bindBooking(c)
	if !ok {
		return nil
	}

	b, err := booking.New(req.Passenger, req.EmergencyContact, req.Selection,
		req.TripType, req.CheckedBags, h.rates.Rate())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid_booking",
			Message: err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
	}

	pdfBytes, err := b.ItineraryPDF()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "pdf_error",
			Message: "Failed to render itinerary: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=itinerary-%s.pdf", b.Reference))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *BookingHandler) bindBooking(c echo.Context) (BookingRequest, bool) {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
		return req, false
	}
	if req.TripType == "" {
		req.TripType = models.TripOneWay
	}
	return req, true
}
