package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibwangi/tripsearch/internal/booking"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

const bookingBody = `{
	"passenger": {
		"first_name": "Amaka",
		"last_name": "Okafor",
		"email": "amaka@example.com",
		"phone": "+2348012345678"
	},
	"emergency_contact": {"same_as_passenger": true},
	"selection": {
		"outbound": {"id": "out", "carrier_code": "HA", "price_major_units": 624},
		"return": {"id": "ret", "carrier_code": "JL", "price_major_units": 663}
	},
	"trip_type": "round_trip",
	"checked_bags": 1
}`

func TestCreateBooking(t *testing.T) {
	h := NewBookingHandler(currency.NewProvider(1500))

	rec, _ := doJSON(t, h.Create, bookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var b booking.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, float64(1930500), b.Breakdown.TotalNGN)
	assert.Equal(t, "Amaka", b.EmergencyContact.FirstName)
}

func TestCreateBooking_InvalidPassenger(t *testing.T) {
	h := NewBookingHandler(currency.NewProvider(1500))

	rec, _ := doJSON(t, h.Create, `{"passenger": {"last_name": "Okafor"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_booking")
}

func TestCreateBooking_IncompleteSelection(t *testing.T) {
	h := NewBookingHandler(currency.NewProvider(1500))

	body := `{
		"passenger": {
			"first_name": "Amaka",
			"last_name": "Okafor",
			"email": "amaka@example.com",
			"phone": "+2348012345678"
		},
		"selection": {"outbound": {"id": "out", "price_major_units": 624}},
		"trip_type": "round_trip"
	}`
	rec, _ := doJSON(t, h.Create, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItineraryPDFDownload(t *testing.T) {
	h := NewBookingHandler(currency.NewProvider(1500))

	rec, _ := doJSON(t, h.Itinerary, bookingBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=itinerary-")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}
