package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/spf13/cobra"
)

var (
	dryRun      bool
	emailAudit  bool
	auditFilter pkgdto.Filter
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Audit and repair product categories",
}

var categoriesAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Count products per category and list non-canonical placements",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesAudit,
}

var categoriesMapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the category remapping table in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier, err := loadClassifier()
		if err != nil {
			return err
		}

		entries := classifier.Entries()
		if jsonOutput {
			return printJSON(cmd, entries)
		}
		printCategoryMap(cmd.OutOrStdout(), entries)

		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Inspect single products",
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show a product with the corrections the maintenance commands would apply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			inspection, err := services.Catalog.InspectProduct(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, inspection)
			}
			printInspection(cmd.OutOrStdout(), inspection)

			return nil
		})
	},
}

var categoriesFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Move products into their canonical category and sub-category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCorrection(cmd, "Category fix", service.CatalogService.FixCategories)
	},
}

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Maintain product specifications",
}

var specsFillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill missing specification keys from the category templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCorrection(cmd, "Specification fill", service.CatalogService.FillSpecifications)
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Maintain product colors",
}

var colorsNormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite legacy color names into name and hex code pairs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCorrection(cmd, "Color normalization", service.CatalogService.NormalizeColors)
	},
}

func init() {
	for _, c := range []*cobra.Command{categoriesFixCmd, specsFillCmd, colorsNormalizeCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Report the changes without writing them")
	}
	categoriesAuditCmd.Flags().BoolVar(&emailAudit, "email", false, "Mail the audit to REPORT_RECIPIENTS")
	categoriesAuditCmd.Flags().StringVar(&auditFilter.Category, "category", "", "Only audit products stored under this category")
	categoriesAuditCmd.Flags().StringVar(&auditFilter.Q, "q", "", "Only audit products whose name contains this text")
	categoriesAuditCmd.Flags().IntVar(&auditFilter.Limit, "limit", 0, "Audit at most this many products (0 for all)")
	categoriesAuditCmd.Flags().IntVar(&auditFilter.Page, "page", 1, "Page of --limit sized batches to audit")
}

func runCategoriesAudit(cmd *cobra.Command, args []string) error {
	if auditFilter.Limit < 0 || auditFilter.Page < 1 {
		return fmt.Errorf("--limit must be non-negative and --page at least 1")
	}

	return withStore(func(ctx context.Context, services app.Services) error {
		audit, err := services.Catalog.AuditCategories(ctx, auditFilter)
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := printJSON(cmd, audit); err != nil {
				return err
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), service.RenderCategoryAudit(audit))
		}

		if !emailAudit {
			return nil
		}

		mailer := service.CreateReportMailer(conf.SMTPConfig)
		if err := mailer.SendCategoryAudit(ctx, audit, conf.SMTPConfig.Recipients, time.Now()); err != nil {
			return fmt.Errorf("mailing audit: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Audit mailed to %d recipient(s)\n", len(conf.SMTPConfig.Recipients))

		return nil
	})
}

type correctionFunc func(svc service.CatalogService, ctx context.Context, dryRun bool) (dto.CorrectionReport, error)

// runCorrection prints the report even when the run aborted part way, so the
// operator sees what was already written.
func runCorrection(cmd *cobra.Command, title string, fn correctionFunc) error {
	return withStore(func(ctx context.Context, services app.Services) error {
		report, runErr := fn(services.Catalog, ctx, dryRun)

		if jsonOutput {
			if err := printJSON(cmd, report); err != nil {
				return err
			}
		} else {
			printCorrectionReport(cmd.OutOrStdout(), title, report)
		}

		return runErr
	})
}
