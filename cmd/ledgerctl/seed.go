package main

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/platform/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Load tenants, charts of accounts and configuration from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}
			sum, err := seed.Apply(a.ctx, file, a.roster, a.svc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tenant(s): %d account(s) created, %d already present, %d config(s) applied\n",
				sum.Tenants, sum.AccountsCreated, sum.AccountsSkipped, sum.ConfigsApplied)
			return nil
		},
	}
}
