package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibwangi/tripsearch/internal/models"
)

func TestFallback_DatasetShape(t *testing.T) {
	sc := models.SearchContext{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2025-02-12",
		Adults:        1,
	}

	offers := Fallback(sc)
	require.Len(t, offers, 6)

	wantPrices := []float64{624, 663, 837, 789, 839, 724}
	wantCarriers := []string{"HA", "JL", "DL", "UA", "AA", "KE"}
	for i, o := range offers {
		assert.Equal(t, wantPrices[i], o.PriceMajorUnits)
		assert.Equal(t, wantCarriers[i], o.CarrierCode)
		assert.Equal(t, models.ProvenanceFallback, o.Provenance)
		assert.Equal(t, models.TripOneWay, o.TripType)
		assert.GreaterOrEqual(t, o.DurationMinutes, 0)
	}

	assert.Equal(t, "fallback-1", offers[0].ID)
	assert.Equal(t, time.Date(2025, 2, 12, 7, 0, 0, 0, time.UTC), offers[0].DepartureTime)
	assert.Equal(t, 555, offers[0].DurationMinutes)
}

func TestFallback_RoundTripContext(t *testing.T) {
	ret := "2025-02-16"
	sc := models.SearchContext{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2025-02-12",
		ReturnDate:    &ret,
		Adults:        1,
	}

	for _, o := range Fallback(sc) {
		assert.Equal(t, models.TripRoundTrip, o.TripType)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	sc := models.SearchContext{
		Origin:        "LOS",
		Destination:   "PHC",
		DepartureDate: "2025-03-01",
		Adults:        2,
	}
	assert.Equal(t, Fallback(sc), Fallback(sc))
}
