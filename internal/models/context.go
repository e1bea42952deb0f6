package models

// SearchContext is the immutable input that drives one search. It is
// passed unchanged to every adapter; trip type derives from it, never
// from vendor data.
type SearchContext struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Adults        int     `json:"adults"`
	Minors        int     `json:"minors"`
}

func (c *SearchContext) Validate() error {
	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if c.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if c.Adults <= 0 {
		c.Adults = 1
	}
	return nil
}

// TripType is round trip exactly when a return date was part of the
// search request.
func (c SearchContext) TripType() TripType {
	if c.ReturnDate != nil && *c.ReturnDate != "" {
		return TripRoundTrip
	}
	return TripOneWay
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
)
