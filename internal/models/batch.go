package models

// BatchResult is the uniform success/failure envelope the vendor clients
// hand to the normalizer. Vendor-side failures (network, auth, timeout,
// polling exhaustion) arrive as OK=false with an error summary; they are
// never surfaced as Go errors inside the core.
type BatchResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func BatchOK() BatchResult {
	return BatchResult{OK: true}
}

func BatchFailed(reason string) BatchResult {
	return BatchResult{OK: false, Error: reason}
}

// AmadeusBatch carries raw flight-offer records from the Amadeus
// flight-offers endpoint: itinerary-bearing objects with ordered
// segments and a string total price.
type AmadeusBatch struct {
	BatchResult
	Offers []AmadeusOffer `json:"offers"`
}

type AmadeusOffer struct {
	ID                     string             `json:"id"`
	Itineraries            []AmadeusItinerary `json:"itineraries"`
	Price                  AmadeusPrice       `json:"price"`
	ValidatingAirlineCodes []string           `json:"validatingAirlineCodes,omitempty"`
}

type AmadeusItinerary struct {
	// Duration is the vendor's ISO-8601 duration string. Kept for the
	// raw payload but never used: durations are recomputed from the
	// segment timestamps.
	Duration string           `json:"duration,omitempty"`
	Segments []AmadeusSegment `json:"segments"`
}

type AmadeusSegment struct {
	Departure   AmadeusEndpoint `json:"departure"`
	Arrival     AmadeusEndpoint `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number,omitempty"`
}

type AmadeusEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type AmadeusPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// SkyscannerBatch carries an already-settled pricing session: priced
// itinerary identifiers plus the leg and carrier lookup tables the
// session resolved so far. Leg or carrier detail may be missing when the
// session completed before every reference resolved.
type SkyscannerBatch struct {
	BatchResult
	Itineraries []SkyscannerItinerary `json:"Itineraries"`
	Legs        []SkyscannerLeg       `json:"Legs"`
	Carriers    []SkyscannerCarrier   `json:"Carriers"`
}

type SkyscannerItinerary struct {
	OutboundLegID  string                    `json:"OutboundLegId"`
	PricingOptions []SkyscannerPricingOption `json:"PricingOptions"`
}

type SkyscannerPricingOption struct {
	Price float64 `json:"Price"`
}

type SkyscannerLeg struct {
	ID        string `json:"Id"`
	Departure string `json:"Departure"`
	Arrival   string `json:"Arrival"`
	Carriers  []int  `json:"Carriers"`
	StopIDs   []int  `json:"Stops"`
}

type SkyscannerCarrier struct {
	ID   int    `json:"Id"`
	Code string `json:"Code"`
	Name string `json:"Name,omitempty"`
}
