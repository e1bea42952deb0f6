package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibwangi/tripsearch/cmd/tripctl/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "tripctl",
		Short: "Offline travel search tool for the Ibwangi core",
		Long:  "tripctl runs the offer normalization, filtering and price-grid pipeline against the built-in fallback dataset, without touching any vendor API.",
	}

	root.AddCommand(commands.SearchCmd())
	root.AddCommand(commands.GridCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tripctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tripctl v0.1.0")
		},
	}
}
