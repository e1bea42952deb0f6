// Package hotels serves the static stay catalog shown on the hotel
// browsing pages. There is no live inventory source; the catalog is
// fixed and filtering happens in memory.
package hotels

import "strings"

type Hotel struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Rating           float64 `json:"rating"`
	RatingText       string  `json:"rating_text"`
	ReviewCount      int     `json:"review_count"`
	PriceNGN         float64 `json:"price_ngn"`
	OriginalPriceNGN float64 `json:"original_price_ngn"`
	Badge            string  `json:"badge,omitempty"`
}

var catalog = []Hotel{
	{
		ID:               "obudu-cattle-ranch",
		Name:             "Obudu Cattle Ranch Resort",
		Location:         "Cross River, Nigeria",
		Rating:           8.3,
		RatingText:       "Very Good",
		ReviewCount:      356,
		PriceNGN:         207969,
		OriginalPriceNGN: 244669,
		Badge:            "Getaway Deal",
	},
	{
		ID:               "obudu-mountain-resort",
		Name:             "Obudu Mountain Resort & Water Park",
		Location:         "Cross River, Nigeria",
		Rating:           7.0,
		RatingText:       "Good",
		ReviewCount:      266,
		PriceNGN:         80771,
		OriginalPriceNGN: 95023,
		Badge:            "Getaway Deal",
	},
	{
		ID:               "shades-of-luxury",
		Name:             "Shades of Luxury Beach Resort",
		Location:         "Ilashe, Lagos",
		Rating:           7.9,
		RatingText:       "Good",
		ReviewCount:      13,
		PriceNGN:         259395,
		OriginalPriceNGN: 418384,
	},
}

func Catalog() []Hotel {
	out := make([]Hotel, len(catalog))
	copy(out, catalog)
	return out
}

func ByID(id string) (Hotel, bool) {
	for _, h := range catalog {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

// FilterByPrice keeps hotels within [min, max] NGN per stay. A zero max
// means no upper bound.
func FilterByPrice(list []Hotel, min, max float64) []Hotel {
	result := make([]Hotel, 0, len(list))
	for _, h := range list {
		if h.PriceNGN < min {
			continue
		}
		if max > 0 && h.PriceNGN > max {
			continue
		}
		result = append(result, h)
	}
	return result
}

// Others returns the catalog minus the named hotel, for the "other
// stays" rail on a details page.
func Others(excludeID string) []Hotel {
	result := make([]Hotel, 0, len(catalog))
	for _, h := range catalog {
		if !strings.EqualFold(h.ID, excludeID) {
			result = append(result, h)
		}
	}
	return result
}
