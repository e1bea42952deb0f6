package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/normalizer"
	"github.com/ibwangi/tripsearch/internal/pricegrid"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

func GridCmd() *cobra.Command {
	var (
		sc      models.SearchContext
		retDate string
		rate    float64
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the flexible-dates price grid",
		Example: `  tripctl grid --from LOS --to ABV --depart 2025-02-12 --return 2025-02-16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if retDate != "" {
				sc.ReturnDate = &retDate
			}
			if sc.Adults == 0 {
				sc.Adults = 1
			}

			offers, err := normalizer.Normalize(sc,
				models.AmadeusBatch{BatchResult: models.BatchFailed("offline")},
				models.SkyscannerBatch{BatchResult: models.BatchFailed("offline")})
			if err != nil {
				return err
			}

			grid := pricegrid.Build(offers, sc, rate)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(grid)
			}

			fmt.Printf("%10s", "")
			for _, col := range grid.ColLabels {
				fmt.Printf(" %12s", col)
			}
			fmt.Println()
			for i, rowLabel := range grid.RowLabels {
				fmt.Printf("%10s", rowLabel)
				for j := range grid.ColLabels {
					fmt.Printf(" %12s", grid.Cells[i][j])
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sc.Origin, "from", "", "Origin airport code (required)")
	cmd.Flags().StringVar(&sc.Destination, "to", "", "Destination airport code (required)")
	cmd.Flags().StringVar(&sc.DepartureDate, "depart", "", "Departure date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&retDate, "return", "", "Return date YYYY-MM-DD (optional)")
	cmd.Flags().IntVar(&sc.Adults, "adults", 1, "Number of adults")
	cmd.Flags().Float64Var(&rate, "rate", currency.DefaultUSDToNGN, "USD to NGN rate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
