package main

import (
	"context"
	"fmt"

	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect and update orders",
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show an order with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			order, err := services.Order.GetOrder(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, order)
			}
			printOrder(cmd.OutOrStdout(), order)
			return nil
		})
	},
}

var ordersDeliverCmd = &cobra.Command{
	Use:   "deliver <order-id>",
	Short: "Mark an order as delivered so its products become reviewable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			order, err := services.Order.ForceDeliver(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, order)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", order.ID, order.Status)
			return nil
		})
	},
}

var ordersListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List the orders of a user, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, services app.Services) error {
			orders, err := services.Order.ListUserOrders(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, orders)
			}
			printOrders(cmd.OutOrStdout(), orders)
			return nil
		})
	},
}
