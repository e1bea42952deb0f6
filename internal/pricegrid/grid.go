// Package pricegrid synthesizes the flexible-dates price matrix shown
// next to search results. Every value here is an estimate derived from
// the first canonical offer (or a fixed placeholder table), not a live
// fare; nothing in this package talks to a vendor.
package pricegrid

import (
	"math/rand"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"

	"github.com/ibwangi/tripsearch/pkg/currency"
)

const (
	gridSize          = 5
	maxVariation      = 0.15
	weekendMultiplier = 1.2
	dateLabelFormat   = "Jan 2"
)

// placeholderPrices is the agreed fixed table used when no live offers
// exist, so the UI always has stable content. Values are USD major units.
var placeholderPrices = [gridSize][gridSize]float64{
	{624, 592, 648, 701, 655},
	{592, 575, 610, 689, 630},
	{837, 790, 812, 901, 858},
	{1308, 1240, 1275, 1420, 1350},
	{724, 688, 705, 790, 742},
}

// Grid is the synthesized matrix: ordered row and column date labels and
// the converted, formatted estimate for each (row, column) pair.
type Grid struct {
	RowLabels []string   `json:"row_labels"`
	ColLabels []string   `json:"col_labels"`
	Cells     [][]string `json:"cells"`
}

// Build derives a gridSize x gridSize estimate matrix around the searched
// dates. Rows vary the departure date, columns the return date, each by
// -2..+2 days. With live offers the estimate is
// basePrice * (1 + variation) * weekendMultiplier, variation drawn from
// [-0.15, +0.15] by a source seeded from the search context, so the same
// search always renders the same grid.
func Build(offers []models.Offer, sc models.SearchContext, rate float64) Grid {
	rowAnchor := parseDate(sc.DepartureDate)
	colAnchor := rowAnchor.AddDate(0, 0, 4)
	if sc.ReturnDate != nil && *sc.ReturnDate != "" {
		colAnchor = parseDate(*sc.ReturnDate)
	}

	rows := dateWindow(rowAnchor)
	cols := dateWindow(colAnchor)

	grid := Grid{
		RowLabels: labels(rows),
		ColLabels: labels(cols),
		Cells:     make([][]string, gridSize),
	}

	if len(offers) == 0 {
		for i := range grid.Cells {
			grid.Cells[i] = make([]string, gridSize)
			for j := range grid.Cells[i] {
				grid.Cells[i][j] = currency.ConvertAndFormat(placeholderPrices[i][j], rate)
			}
		}
		return grid
	}

	basePrice := offers[0].PriceMajorUnits
	rng := rand.New(rand.NewSource(seed(sc)))

	for i := range grid.Cells {
		grid.Cells[i] = make([]string, gridSize)
		for j := range grid.Cells[i] {
			variation := (rng.Float64()*2 - 1) * maxVariation
			estimate := basePrice * (1 + variation)
			if isWeekend(rows[i]) || isWeekend(cols[j]) {
				estimate *= weekendMultiplier
			}
			grid.Cells[i][j] = currency.ConvertAndFormat(estimate, rate)
		}
	}

	return grid
}

func dateWindow(anchor time.Time) [gridSize]time.Time {
	var window [gridSize]time.Time
	for i := 0; i < gridSize; i++ {
		window[i] = anchor.AddDate(0, 0, i-gridSize/2)
	}
	return window
}

func labels(dates [gridSize]time.Time) []string {
	out := make([]string, gridSize)
	for i, d := range dates {
		out[i] = d.Format(dateLabelFormat)
	}
	return out
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func seed(sc models.SearchContext) int64 {
	s := sc.Origin + sc.Destination + sc.DepartureDate
	if sc.ReturnDate != nil {
		s += *sc.ReturnDate
	}
	var h int64
	for _, c := range s {
		h = h*31 + int64(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
