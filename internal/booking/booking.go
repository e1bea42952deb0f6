// Package booking covers the passenger-information step: it freezes a
// completed selection, validates the traveller details and produces the
// price breakdown shown before checkout. Bookings live only for the
// session; nothing here persists.
package booking

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/selection"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

type Passenger struct {
	FirstName            string `json:"first_name"`
	MiddleName           string `json:"middle_name,omitempty"`
	LastName             string `json:"last_name"`
	Suffix               string `json:"suffix,omitempty"`
	DateOfBirth          string `json:"date_of_birth"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	RedressNumber        string `json:"redress_number,omitempty"`
	KnownTravellerNumber string `json:"known_traveller_number,omitempty"`
}

type EmergencyContact struct {
	SameAsPassenger bool   `json:"same_as_passenger"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

type BookingError string

func (e BookingError) Error() string {
	return string(e)
}

const (
	ErrMissingFirstName    BookingError = "first name is required"
	ErrMissingLastName     BookingError = "last name is required"
	ErrMissingEmail        BookingError = "email is required"
	ErrMissingPhone        BookingError = "phone is required"
	ErrIncompleteItinerary BookingError = "selection is missing a flight"
)

func (p Passenger) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrMissingFirstName
	}
	if strings.TrimSpace(p.LastName) == "" {
		return ErrMissingLastName
	}
	if !strings.Contains(p.Email, "@") {
		return ErrMissingEmail
	}
	if strings.TrimSpace(p.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}

// FillFromPassenger copies the passenger's contact details into the
// emergency contact when the same-as-passenger box is ticked.
func (c EmergencyContact) FillFromPassenger(p Passenger) EmergencyContact {
	if !c.SameAsPassenger {
		return c
	}
	return EmergencyContact{
		SameAsPassenger: true,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		Phone:           p.Phone,
	}
}

// Breakdown splits a converted total the way the checkout page shows it:
// 80% base fare, 20% taxes and fees.
type Breakdown struct {
	TotalNGN    float64 `json:"total_ngn"`
	SubtotalNGN float64 `json:"subtotal_ngn"`
	TaxesNGN    float64 `json:"taxes_ngn"`
}

func ComputeBreakdown(state selection.State, rate float64) Breakdown {
	total := selection.ComputeTotal(state, rate)
	return Breakdown{
		TotalNGN:    total,
		SubtotalNGN: math.Round(total * 0.8),
		TaxesNGN:    math.Round(total * 0.2),
	}
}

type Booking struct {
	Reference        string           `json:"reference"`
	Passenger        Passenger        `json:"passenger"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Selection        selection.State  `json:"selection"`
	CheckedBags      int              `json:"checked_bags"`
	TripType         models.TripType  `json:"trip_type"`
	Breakdown        Breakdown        `json:"breakdown"`
	CreatedAt        time.Time        `json:"created_at"`
}

// New freezes the current selection state into a booking. The selection
// must be complete for the trip type; passenger details must validate.
func New(p Passenger, contact EmergencyContact, state selection.State, tripType models.TripType, checkedBags int, rate float64) (Booking, error) {
	if err := p.Validate(); err != nil {
		return Booking{}, err
	}
	if !state.Complete(tripType) {
		return Booking{}, ErrIncompleteItinerary
	}
	if checkedBags < 0 {
		checkedBags = 0
	}

	return Booking{
		Reference:        uuid.New().String(),
		Passenger:        p,
		EmergencyContact: contact.FillFromPassenger(p),
		Selection:        state,
		CheckedBags:      checkedBags,
		TripType:         tripType,
		Breakdown:        ComputeBreakdown(state, rate),
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// FormattedTotal renders the booking total in naira.
func (b Booking) FormattedTotal() string {
	return currency.FormatNaira(b.Breakdown.TotalNGN)
}
