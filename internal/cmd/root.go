package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "furnihome",
	Short: "FurniHome storefront backend",
	Long: `FurniHome serves the furniture storefront API: catalog, checkout,
orders, reviews, the store locator and the admin reports.

Configuration comes from the environment, optionally via a .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
