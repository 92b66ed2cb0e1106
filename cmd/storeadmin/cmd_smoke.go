package main

import (
	"errors"
	"fmt"

	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/alimikegami/point-of-sales/store-admin/internal/smoke"
	"github.com/spf13/cobra"
)

var errSmokeFailed = errors.New("smoke checks failed")

var smokeHost string

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Exercise every endpoint of the companion server",
	Long: `Smoke sends one request to each companion endpoint. A check passes when the
server answers below 500; rejected payloads still prove the route is alive.`,
	Args: cobra.NoArgs,
	RunE: runSmoke,
}

func init() {
	smokeCmd.Flags().StringVar(&smokeHost, "host", "", "Companion base URL (default COMPANION_HOST)")
}

func runSmoke(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	host := smokeHost
	if host == "" {
		host = conf.CompanionHost
	}

	runner := smoke.NewRunner(host, app.NewHTTPClient("companion", conf.HTTPTimeout), nil)
	results := runner.Run(ctx)

	if jsonOutput {
		if err := printJSON(cmd, results); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Smoke checks against %s\n\n", host)
		printSmokeResults(cmd.OutOrStdout(), results)
	}

	if !smoke.Passed(results) {
		return errSmokeFailed
	}

	return nil
}
