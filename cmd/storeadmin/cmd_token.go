package main

import (
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenName string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the admin web service",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "admin", "User ID claim")
	tokenCmd.Flags().StringVar(&tokenName, "name", "Store Admin", "Name claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.UserRoleAdmin, "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	if conf.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET: %w", errs.ErrMissingSetting)
	}

	token, err := utils.CreateJWTToken(tokenUser, tokenName, tokenRole, conf.JWTSecret, tokenTTL)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
