package models

import (
	"encoding/json"
	"time"
)

type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

// Provenance records which data path produced an offer batch. A single
// result set never mixes provenances.
type Provenance string

const (
	ProvenanceAmadeus    Provenance = "live-amadeus"
	ProvenanceSkyscanner Provenance = "live-skyscanner"
	ProvenanceFallback   Provenance = "fallback-mock"
)

// CarrierUnresolved marks a carrier the vendor had not resolved at
// hand-off time. Adapters use it instead of guessing.
const CarrierUnresolved = "UNRESOLVED"

// Offer is the canonical flight option every downstream component works
// with, regardless of which vendor (or the fallback dataset) produced it.
// Offers are immutable once constructed.
type Offer struct {
	ID              string     `json:"id"`
	CarrierCode     string     `json:"carrier_code"`
	DepartureTime   time.Time  `json:"departure_time"`
	ArrivalTime     time.Time  `json:"arrival_time"`
	DurationMinutes int        `json:"duration_minutes"`
	StopCount       int        `json:"stop_count"`
	PriceMajorUnits float64    `json:"price_major_units"`
	TripType        TripType   `json:"trip_type"`
	Provenance      Provenance `json:"provenance"`

	// Raw holds the original vendor payload for later booking calls.
	// Filtering, selection and the price grid never look inside it.
	Raw json.RawMessage `json:"-"`
}

// DurationBetween computes a non-negative duration in minutes between
// departure and arrival. Vendor-supplied duration strings are never
// trusted. An arrival clock-time before departure is treated as an
// overnight wraparound rather than a negative duration.
func DurationBetween(departure, arrival time.Time) int {
	if departure.IsZero() || arrival.IsZero() {
		return 0
	}
	d := arrival.Sub(departure)
	for d < 0 {
		d += 24 * time.Hour
	}
	return int(d.Minutes())
}
