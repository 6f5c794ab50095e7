package main

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/spf13/cobra"
)

func newAccountsCmd(a *app) *cobra.Command {
	var class int

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				accounts []domain.Account
				err      error
			)
			if class > 0 {
				accounts, err = a.svc.Account.ListByClass(a.ctx, a.tenant, class)
			} else {
				accounts, err = a.svc.Account.ListAccounts(a.ctx, a.tenant)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(accounts) == 0 {
				fmt.Fprintln(out, "No accounts found.")
				return nil
			}
			fmt.Fprintf(out, "%-10s %-32s %5s %-10s %-8s %s\n", "CODE", "LABEL", "CLASS", "KIND", "PARENT", "STATUS")
			for _, acc := range accounts {
				label := acc.Label
				if len(label) > 30 {
					label = label[:30] + ".."
				}
				status := "active"
				if !acc.Active {
					status = "inactive"
				} else if acc.IsHeader() {
					status = "header"
				}
				fmt.Fprintf(out, "%-10s %-32s %5d %-10s %-8s %s\n", acc.Code, label, acc.Class, acc.Kind, acc.ParentCode, status)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&class, "class", 0, "Only active accounts of this class (1-7)")
	return cmd
}
