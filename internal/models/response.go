package models

type SearchMetadata struct {
	TotalResults   int        `json:"total_results"`
	VisibleResults int        `json:"visible_results"`
	Expanded       bool       `json:"expanded"`
	Provenance     Provenance `json:"provenance"`
	TripType       TripType   `json:"trip_type"`
	VendorErrors   []string   `json:"vendor_errors,omitempty"`
	SearchTimeMs   int64      `json:"search_time_ms"`
	CacheHit       bool       `json:"cache_hit"`
}

type SearchResponse struct {
	SearchContext SearchContext  `json:"search_context"`
	Metadata      SearchMetadata `json:"metadata"`
	Offers        []Offer        `json:"offers"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
