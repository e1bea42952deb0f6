// Package selection models the at-most-two-offer pick flow as a value
// state machine: Empty, OutboundChosen and, for round trips only,
// ReturnChosen. Transitions are pure so the machine stays testable
// outside any handler.
package selection

import (
	"github.com/ibwangi/tripsearch/internal/models"

	"github.com/ibwangi/tripsearch/pkg/currency"
)

type State struct {
	Outbound *models.Offer `json:"outbound,omitempty"`
	Return   *models.Offer `json:"return,omitempty"`
}

func Empty() State {
	return State{}
}

func (s State) IsEmpty() bool {
	return s.Outbound == nil && s.Return == nil
}

// Complete reports whether the state can enter the passenger-information
// step: an outbound pick, plus a return pick for round trips.
func (s State) Complete(tripType models.TripType) bool {
	if s.Outbound == nil {
		return false
	}
	if tripType == models.TripRoundTrip {
		return s.Return != nil
	}
	return true
}

// Select applies one pick and returns the next state. One-way contexts
// always replace the single outbound slot. Round-trip contexts fill
// outbound first, then the return slot; once both are set, every further
// pick overwrites only the return leg (last click wins on the second
// slot). Picking the same offer twice is legal and idempotent.
func Select(s State, offer models.Offer, tripType models.TripType) State {
	if tripType != models.TripRoundTrip {
		return State{Outbound: &offer}
	}

	if s.Outbound == nil {
		return State{Outbound: &offer}
	}

	return State{Outbound: s.Outbound, Return: &offer}
}

// ComputeTotal converts each chosen leg at the rate in effect right now
// and sums them. The rate is read per call, never cached per offer.
func ComputeTotal(s State, rate float64) float64 {
	total := 0.0
	if s.Outbound != nil {
		total += currency.Convert(s.Outbound.PriceMajorUnits, rate)
	}
	if s.Return != nil {
		total += currency.Convert(s.Return.PriceMajorUnits, rate)
	}
	return total
}
