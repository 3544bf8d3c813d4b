package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/furnihome/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the sample catalog, users, reviews and stores",
	Long: `Wipe every table and load the sample data.

Accounts created:
  admin@furnihome.com / admin123
  demo@furnihome.com  / demo123`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set; seeding an in-memory database has no effect, use serve --seed instead")
		}

		s := &seed.Seeder{Repo: a.Repo, Auth: a.Auth, Catalog: a.Catalog, Stores: a.Stores}
		res, err := s.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d products, %d reviews, %d stores\n",
			res.Users, res.Products, res.Reviews, res.Stores)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
