package booking

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

// ItineraryPDF renders the booking summary as a downloadable PDF. The
// document is a pre-payment summary, not a ticket.
func (b Booking) ItineraryPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(26, 43, 73)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 7)
	pdf.CellFormat(100, 10, "Ibwangi Travel", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 16)
	pdf.CellFormat(170, 6, "Itinerary Summary", "", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)

	// Disclaimer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(130, 90, 20)
	pdf.MultiCell(170, 4,
		"This is NOT a ticket or booking confirmation. Fares are subject to change until payment completes.",
		"", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	sectionHeader := func(title string) {
		pdf.SetFillColor(26, 43, 73)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Ln(1)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(115, 6, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking")
	row("Reference", b.Reference)
	row("Issued", b.CreatedAt.Format(time.RFC1123))
	row("Trip type", string(b.TripType))
	row("Checked bags", fmt.Sprintf("%d", b.CheckedBags))
	pdf.Ln(3)

	sectionHeader("Passenger")
	row("Name", passengerName(b.Passenger))
	row("Email", b.Passenger.Email)
	row("Phone", b.Passenger.Phone)
	if b.Passenger.KnownTravellerNumber != "" {
		row("Known traveller no.", b.Passenger.KnownTravellerNumber)
	}
	pdf.Ln(3)

	if b.Selection.Outbound != nil {
		sectionHeader("Outbound Flight")
		flightRows(row, *b.Selection.Outbound)
		pdf.Ln(3)
	}
	if b.Selection.Return != nil {
		sectionHeader("Return Flight")
		flightRows(row, *b.Selection.Return)
		pdf.Ln(3)
	}

	sectionHeader("Price")
	row("Subtotal", currency.FormatNaira(b.Breakdown.SubtotalNGN))
	row("Taxes and fees", currency.FormatNaira(b.Breakdown.TaxesNGN))
	row("Total", currency.FormatNaira(b.Breakdown.TotalNGN))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flightRows(row func(label, value string), offer models.Offer) {
	row("Carrier", offer.CarrierCode)
	row("Departs", offer.DepartureTime.Format("Mon, 02 Jan 2006 15:04"))
	row("Arrives", offer.ArrivalTime.Format("Mon, 02 Jan 2006 15:04"))
	row("Duration", fmt.Sprintf("%dh %02dm", offer.DurationMinutes/60, offer.DurationMinutes%60))
	row("Stops", fmt.Sprintf("%d", offer.StopCount))
	row("Fare", currency.FormatUSD(offer.PriceMajorUnits))
}

func passengerName(p Passenger) string {
	name := p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	name += " " + p.LastName
	if p.Suffix != "" {
		name += " " + p.Suffix
	}
	return name
}
