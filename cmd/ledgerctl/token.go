package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// newTokenCmd signs a token whose subject is the persistent --user.
func newTokenCmd(a *app) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Issue a development JWT signed with the server's JWT_SECRET",
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if ttl == 0 {
				ttl = cfg.JWTExpiryDuration
			}
			token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, a.user, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default JWT_EXPIRY_DURATION)")
	return cmd
}
