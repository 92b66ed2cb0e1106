package main

import (
	"context"

	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/spf13/cobra"
)

var (
	seedReset bool
	seedUsers int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo sellers, products, orders, reviews and wishlists",
	Long: `Seed writes a fixed demo catalogue plus generated customers. With --reset
the seeded collections are emptied first; without it, existing documents
with the same ids are replaced.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Empty the seeded collections first")
	seedCmd.Flags().IntVar(&seedUsers, "users", 3, "Number of demo customers")
}

func runSeed(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, services app.Services) error {
		report, err := services.Seed.Seed(ctx, dto.SeedOptions{Reset: seedReset, Users: seedUsers})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd, report)
		}
		printSeedReport(cmd.OutOrStdout(), report)
		return nil
	})
}
