package adapters

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"
)

// vendorTimeFormats covers the timestamp shapes the two vendors emit.
var vendorTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseVendorTime(s string) (time.Time, bool) {
	for _, format := range vendorTimeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Amadeus maps raw Amadeus flight-offer records onto canonical offers.
// The mapping is pure: the same records and context always produce the
// same offers. Malformed records are skipped, never fatal to the batch.
func Amadeus(sc models.SearchContext, records []models.AmadeusOffer) []models.Offer {
	tripType := sc.TripType()
	offers := make([]models.Offer, 0, len(records))

	for _, rec := range records {
		offer, ok := amadeusOffer(rec, tripType)
		if !ok {
			log.Printf("amadeus adapter: skipping malformed offer %q", rec.ID)
			continue
		}
		offers = append(offers, offer)
	}

	return offers
}

func amadeusOffer(rec models.AmadeusOffer, tripType models.TripType) (models.Offer, bool) {
	if len(rec.Itineraries) == 0 {
		return models.Offer{}, false
	}

	itinerary := rec.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return models.Offer{}, false
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	departure, ok := parseVendorTime(first.Departure.At)
	if !ok {
		return models.Offer{}, false
	}
	arrival, ok := parseVendorTime(last.Arrival.At)
	if !ok {
		return models.Offer{}, false
	}

	total, err := strconv.ParseFloat(rec.Price.Total, 64)
	if err != nil || total < 0 {
		return models.Offer{}, false
	}

	carrier := first.CarrierCode
	if carrier == "" && len(rec.ValidatingAirlineCodes) > 0 {
		carrier = rec.ValidatingAirlineCodes[0]
	}
	if carrier == "" {
		carrier = models.CarrierUnresolved
	}

	raw, _ := json.Marshal(rec)

	return models.Offer{
		ID:              rec.ID,
		CarrierCode:     carrier,
		DepartureTime:   departure,
		ArrivalTime:     arrival,
		DurationMinutes: models.DurationBetween(departure, arrival),
		StopCount:       len(itinerary.Segments) - 1,
		PriceMajorUnits: math.Round(total),
		TripType:        tripType,
		Provenance:      models.ProvenanceAmadeus,
		Raw:             raw,
	}, true
}
