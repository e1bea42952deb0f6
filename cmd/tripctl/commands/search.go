package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibwangi/tripsearch/internal/filter"
	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/normalizer"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

func SearchCmd() *cobra.Command {
	var (
		sc       models.SearchContext
		retDate  string
		criteria filter.Criteria
		showAll  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flights against the fallback dataset",
		Example: `  tripctl search --from LOS --to ABV --depart 2025-02-12 --return 2025-02-16
  tripctl search --from LOS --to ABV --depart 2025-02-12 --max-price 700 --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if retDate != "" {
				sc.ReturnDate = &retDate
			}
			if sc.Adults == 0 {
				sc.Adults = 1
			}

			// No vendor batches offline; both tiers report failure so
			// the normalizer serves the fallback dataset.
			offers, err := normalizer.Normalize(sc,
				models.AmadeusBatch{BatchResult: models.BatchFailed("offline")},
				models.SkyscannerBatch{BatchResult: models.BatchFailed("offline")})
			if err != nil {
				return err
			}

			filtered := filter.Apply(offers, criteria)
			view := filter.NewResultView(filtered)
			if showAll {
				view.ExpandAll()
			}
			visible := view.Visible()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(visible)
			}

			fmt.Printf("%s -> %s on %s (%s)\n", sc.Origin, sc.Destination, sc.DepartureDate, sc.TripType())
			for _, o := range visible {
				fmt.Printf("  %-12s %-4s %s -> %s  %d stop(s)  %s\n",
					o.ID, o.CarrierCode,
					o.DepartureTime.Format("15:04"), o.ArrivalTime.Format("15:04"),
					o.StopCount, currency.FormatUSD(o.PriceMajorUnits))
			}
			if !view.Expanded() && view.Total() > len(visible) {
				fmt.Printf("  ... %d more (use --all)\n", view.Total()-len(visible))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sc.Origin, "from", "", "Origin airport code (required)")
	cmd.Flags().StringVar(&sc.Destination, "to", "", "Destination airport code (required)")
	cmd.Flags().StringVar(&sc.DepartureDate, "depart", "", "Departure date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&retDate, "return", "", "Return date YYYY-MM-DD (optional)")
	cmd.Flags().IntVar(&sc.Adults, "adults", 1, "Number of adults")
	cmd.Flags().Float64Var(&criteria.MaxPrice, "max-price", 0, "Maximum price in USD (0 = no cap)")
	cmd.Flags().StringVar(&criteria.Carrier, "carrier", "", "Carrier code filter")
	cmd.Flags().BoolVar(&showAll, "all", false, "Show all matching offers")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
