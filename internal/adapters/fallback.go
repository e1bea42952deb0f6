package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"
)

// fallbackFlight is one entry of the fixed dataset shown when no live
// vendor batch is usable. Clock times are anchored to the searched
// departure date so the rendered cards stay plausible.
type fallbackFlight struct {
	Airline     string  `json:"airline"`
	CarrierCode string  `json:"carrier_code"`
	DepartClock string  `json:"depart"`
	ArriveClock string  `json:"arrive"`
	Stops       int     `json:"stops"`
	PriceUSD    float64 `json:"price_usd"`
}

var fallbackFlights = []fallbackFlight{
	{"Hawaiian Airlines", "HA", "07:00", "16:15", 1, 624},
	{"Japan Airlines", "JL", "11:30", "20:45", 0, 663},
	{"Delta", "DL", "14:15", "23:30", 1, 837},
	{"United", "UA", "09:45", "19:00", 1, 789},
	{"American Airlines", "AA", "06:30", "15:45", 2, 839},
	{"Korean Air", "KE", "13:00", "22:15", 1, 724},
}

// Fallback produces the deterministic mock offer set. Total vendor
// failure degrades to this dataset instead of an error state.
func Fallback(sc models.SearchContext) []models.Offer {
	anchor, err := time.Parse("2006-01-02", sc.DepartureDate)
	if err != nil {
		anchor = time.Time{}
	}
	tripType := sc.TripType()

	offers := make([]models.Offer, 0, len(fallbackFlights))
	for i, f := range fallbackFlights {
		departure := atClock(anchor, f.DepartClock)
		arrival := atClock(anchor, f.ArriveClock)

		raw, _ := json.Marshal(f)

		offers = append(offers, models.Offer{
			ID:              fmt.Sprintf("fallback-%d", i+1),
			CarrierCode:     f.CarrierCode,
			DepartureTime:   departure,
			ArrivalTime:     arrival,
			DurationMinutes: models.DurationBetween(departure, arrival),
			StopCount:       f.Stops,
			PriceMajorUnits: f.PriceUSD,
			TripType:        tripType,
			Provenance:      models.ProvenanceFallback,
			Raw:             raw,
		})
	}

	return offers
}

func atClock(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
