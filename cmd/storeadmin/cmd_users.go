package main

import (
	"context"

	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Inspect product reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List the reviews written by a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			reviews, err := services.Review.ListUserReviews(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, reviews)
			}
			printReviews(cmd.OutOrStdout(), reviews)
			return nil
		})
	},
}

var reviewsReviewableCmd = &cobra.Command{
	Use:   "reviewable <user-id>",
	Short: "List delivered products the user has not reviewed yet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			items, err := services.Review.ReviewableProducts(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, items)
			}
			printReviewable(cmd.OutOrStdout(), items)
			return nil
		})
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect users",
}

var usersShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a user with their wishlist and order count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			profile, err := services.User.GetUserProfile(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, profile)
			}
			printProfile(cmd.OutOrStdout(), profile)
			return nil
		})
	},
}
