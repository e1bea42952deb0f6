package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/selection"
)

func validPassenger() Passenger {
	return Passenger{
		FirstName:   "Amaka",
		LastName:    "Okafor",
		DateOfBirth: "1992-04-11",
		Email:       "amaka@example.com",
		Phone:       "+2348012345678",
	}
}

func completedSelection() selection.State {
	s := selection.Select(selection.Empty(), models.Offer{ID: "out", CarrierCode: "HA", PriceMajorUnits: 624}, models.TripRoundTrip)
	return selection.Select(s, models.Offer{ID: "ret", CarrierCode: "JL", PriceMajorUnits: 663}, models.TripRoundTrip)
}

func TestPassenger_Validate(t *testing.T) {
	assert.NoError(t, validPassenger().Validate())

	p := validPassenger()
	p.FirstName = "  "
	assert.ErrorIs(t, p.Validate(), ErrMissingFirstName)

	p = validPassenger()
	p.LastName = ""
	assert.ErrorIs(t, p.Validate(), ErrMissingLastName)

	p = validPassenger()
	p.Email = "not-an-email"
	assert.ErrorIs(t, p.Validate(), ErrMissingEmail)

	p = validPassenger()
	p.Phone = ""
	assert.ErrorIs(t, p.Validate(), ErrMissingPhone)
}

func TestEmergencyContact_FillFromPassenger(t *testing.T) {
	p := validPassenger()

	filled := EmergencyContact{SameAsPassenger: true}.FillFromPassenger(p)
	assert.Equal(t, p.FirstName, filled.FirstName)
	assert.Equal(t, p.Email, filled.Email)

	own := EmergencyContact{FirstName: "Chidi", LastName: "Okafor", Phone: "+2348000000000"}
	assert.Equal(t, own, own.FillFromPassenger(p))
}

func TestComputeBreakdown(t *testing.T) {
	b := ComputeBreakdown(completedSelection(), 1500)

	// 624 + 663 USD at 1500: subtotal is 80%, taxes 20%.
	assert.Equal(t, float64(1930500), b.TotalNGN)
	assert.Equal(t, float64(1544400), b.SubtotalNGN)
	assert.Equal(t, float64(386100), b.TaxesNGN)
	assert.Equal(t, b.TotalNGN, b.SubtotalNGN+b.TaxesNGN)
}

func TestNew(t *testing.T) {
	b, err := New(validPassenger(), EmergencyContact{SameAsPassenger: true}, completedSelection(), models.TripRoundTrip, 2, 1500)
	require.NoError(t, err)

	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, 2, b.CheckedBags)
	assert.Equal(t, models.TripRoundTrip, b.TripType)
	assert.Equal(t, "Amaka", b.EmergencyContact.FirstName)
	assert.Equal(t, "₦1,930,500", b.FormattedTotal())
	assert.False(t, b.CreatedAt.IsZero())

	// References are unique per booking.
	b2, err := New(validPassenger(), EmergencyContact{}, completedSelection(), models.TripRoundTrip, 0, 1500)
	require.NoError(t, err)
	assert.NotEqual(t, b.Reference, b2.Reference)
}

func TestNew_IncompleteSelection(t *testing.T) {
	partial := selection.Select(selection.Empty(), models.Offer{ID: "out", PriceMajorUnits: 624}, models.TripRoundTrip)

	_, err := New(validPassenger(), EmergencyContact{}, partial, models.TripRoundTrip, 0, 1500)
	assert.ErrorIs(t, err, ErrIncompleteItinerary)
}

func TestNew_NegativeBagsClamped(t *testing.T) {
	b, err := New(validPassenger(), EmergencyContact{}, completedSelection(), models.TripRoundTrip, -3, 1500)
	require.NoError(t, err)
	assert.Equal(t, 0, b.CheckedBags)
}

func TestItineraryPDF(t *testing.T) {
	b, err := New(validPassenger(), EmergencyContact{SameAsPassenger: true}, completedSelection(), models.TripRoundTrip, 1, 1500)
	require.NoError(t, err)

	pdf, err := b.ItineraryPDF()
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
