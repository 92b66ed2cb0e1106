package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/alimikegami/point-of-sales/store-admin/internal/catalog"
	"github.com/alimikegami/point-of-sales/store-admin/internal/shipping"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
	timeout    time.Duration
	mapFile    string

	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storeadmin",
	Short: "Administrative commands for the storefront document store",
	Long: `storeadmin bundles the store's maintenance jobs: category audits and fixes,
specification and color backfills, order and review inspection, demo data
seeding, and smoke checks against the shipping provider and the companion
server.

Every command connects, does one thing, prints a report and exits non-zero
on failure.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

		conf = config.CreateNewConfig()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print reports as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().StringVar(&mapFile, "map", "", "Category map YAML overriding the built-in table")

	categoriesCmd.AddCommand(categoriesAuditCmd, categoriesFixCmd, categoriesMapCmd)
	productsCmd.AddCommand(productsShowCmd)
	specsCmd.AddCommand(specsFillCmd)
	colorsCmd.AddCommand(colorsNormalizeCmd)
	ordersCmd.AddCommand(ordersShowCmd, ordersDeliverCmd, ordersListCmd)
	reviewsCmd.AddCommand(reviewsListCmd, reviewsReviewableCmd)
	usersCmd.AddCommand(usersShowCmd)
	shippingCmd.AddCommand(shippingLoginCmd, shippingOrdersCmd, shippingCreateDemoCmd)

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(specsCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(shippingCmd)
	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logCommandError(err)
		os.Exit(1)
	}
}

func logCommandError(err error) {
	event := log.Error().Err(err)

	var providerErr *shipping.ProviderError
	if errors.As(err, &providerErr) {
		event = event.Int("status", providerErr.StatusCode).Str("provider_response", string(providerErr.Body))
	}

	event.Msg("command failed")
}

// commandContext bounds a command by --timeout and cancels it on SIGINT or
// SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	ctx = log.Logger.WithContext(ctx)

	return ctx, func() {
		stop()
		cancel()
	}
}

func loadClassifier() (*catalog.Classifier, error) {
	if mapFile == "" {
		return catalog.DefaultClassifier(), nil
	}

	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("opening category map: %w", err)
	}
	defer f.Close()

	return catalog.LoadClassifier(f)
}

// withStore runs fn with services backed by the document store and closes
// every connection afterwards.
func withStore(fn func(ctx context.Context, services app.Services) error) error {
	classifier, err := loadClassifier()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	infra, err := app.Connect(ctx, conf, "storeadmin")
	if err != nil {
		return err
	}
	defer infra.Close(context.Background())

	return fn(ctx, app.BuildServices(infra.DB, infra.Producer, classifier))
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
