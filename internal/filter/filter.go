package filter

import (
	"strings"

	"github.com/ibwangi/tripsearch/internal/models"
)

// Criteria are the user-chosen constraints applied to a canonical offer
// sequence. A zero MaxPrice means no price cap; an empty Carrier means
// any carrier.
type Criteria struct {
	MaxPrice float64 `json:"max_price,omitempty"`
	Carrier  string  `json:"carrier,omitempty"`
}

// Apply returns the subsequence of offers matching the criteria,
// preserving original order. Pure function, no hidden state.
func Apply(offers []models.Offer, c Criteria) []models.Offer {
	result := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if matches(o, c) {
			result = append(result, o)
		}
	}
	return result
}

func matches(o models.Offer, c Criteria) bool {
	if c.MaxPrice > 0 && o.PriceMajorUnits > c.MaxPrice {
		return false
	}
	if c.Carrier != "" && !strings.EqualFold(o.CarrierCode, c.Carrier) {
		return false
	}
	return true
}

// DefaultVisible is how many filtered offers a fresh result view shows
// before the user asks for all of them.
const DefaultVisible = 3

// ResultView is the paging state over one filtered result set. Expansion
// is one-directional: once the full list is shown there is no collapse
// within the same view.
type ResultView struct {
	offers   []models.Offer
	expanded bool
}

func NewResultView(offers []models.Offer) *ResultView {
	return &ResultView{offers: offers}
}

func (v *ResultView) Visible() []models.Offer {
	if v.expanded || len(v.offers) <= DefaultVisible {
		return v.offers
	}
	return v.offers[:DefaultVisible]
}

func (v *ResultView) ExpandAll() {
	v.expanded = true
}

func (v *ResultView) Expanded() bool {
	return v.expanded
}

func (v *ResultView) Total() int {
	return len(v.offers)
}
