package adapters

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"
)

// Skyscanner maps a settled pricing session onto canonical offers. The
// session/polling lifecycle belongs to the vendor client; by the time
// this adapter runs the batch is assumed resolved as far as it will get.
// Leg or carrier references the session never resolved are mapped with
// the explicit unresolved sentinel rather than a guessed value.
func Skyscanner(sc models.SearchContext, batch models.SkyscannerBatch) []models.Offer {
	tripType := sc.TripType()

	legByID := make(map[string]models.SkyscannerLeg, len(batch.Legs))
	for _, leg := range batch.Legs {
		legByID[leg.ID] = leg
	}
	carrierByID := make(map[int]models.SkyscannerCarrier, len(batch.Carriers))
	for _, c := range batch.Carriers {
		carrierByID[c.ID] = c
	}

	offers := make([]models.Offer, 0, len(batch.Itineraries))
	for _, it := range batch.Itineraries {
		if it.OutboundLegID == "" || len(it.PricingOptions) == 0 {
			log.Printf("skyscanner adapter: skipping unpriced itinerary %q", it.OutboundLegID)
			continue
		}

		price := it.PricingOptions[0].Price
		if price < 0 || math.IsNaN(price) {
			log.Printf("skyscanner adapter: skipping itinerary %q with invalid price", it.OutboundLegID)
			continue
		}

		offer := models.Offer{
			ID:              it.OutboundLegID,
			CarrierCode:     models.CarrierUnresolved,
			PriceMajorUnits: math.Round(price),
			TripType:        tripType,
			Provenance:      models.ProvenanceSkyscanner,
		}

		if leg, ok := legByID[it.OutboundLegID]; ok {
			offer.StopCount = len(leg.StopIDs)
			offer.CarrierCode = resolveCarrier(leg, carrierByID)

			var departure, arrival time.Time
			if t, ok := parseVendorTime(leg.Departure); ok {
				departure = t
			}
			if t, ok := parseVendorTime(leg.Arrival); ok {
				arrival = t
			}
			offer.DepartureTime = departure
			offer.ArrivalTime = arrival
			offer.DurationMinutes = models.DurationBetween(departure, arrival)
		}

		offer.Raw, _ = json.Marshal(it)
		offers = append(offers, offer)
	}

	return offers
}

func resolveCarrier(leg models.SkyscannerLeg, carriers map[int]models.SkyscannerCarrier) string {
	if len(leg.Carriers) == 0 {
		return models.CarrierUnresolved
	}
	c, ok := carriers[leg.Carriers[0]]
	if !ok || c.Code == "" {
		return models.CarrierUnresolved
	}
	return c.Code
}
