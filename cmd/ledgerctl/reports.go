package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/export"
	"github.com/spf13/cobra"
)

func newLedgerCmd(a *app) *cobra.Command {
	var from, to, xlsx string

	cmd := &cobra.Command{
		Use:   "ledger [code]",
		Short: "Print the general ledger of an account over a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDate("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseDate("to", to)
			if err != nil {
				return err
			}

			view, err := a.svc.Ledger.Project(a.ctx, a.tenant, args[0], fromDate, toDate)
			if err != nil {
				return err
			}
			if xlsx != "" {
				return writeFile(xlsx, func(f *os.File) error { return export.WriteLedger(f, view, a.exponent) })
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ledger %s %s  %s .. %s\n", view.Account.Code, view.Account.Label,
				view.From.Format(domain.DateLayout), view.To.Format(domain.DateLayout))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tENTRY\tACCOUNT\tLABEL\tDEBIT\tCREDIT\tBAL DEBIT\tBAL CREDIT")
			fmt.Fprintf(tw, "\t\t\tOpening\t\t\t%s\t%s\n", a.money(view.OpeningDebit), a.money(view.OpeningCredit))
			for _, m := range view.Movements {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n", m.Date.Format(domain.DateLayout), m.EntryNumber,
					m.AccountCode, m.Label, a.money(m.Debit), a.money(m.Credit), a.money(m.RunningDebit), a.money(m.RunningCredit))
			}
			fmt.Fprintf(tw, "\t\t\tClosing\t\t\t%s\t%s\n", a.money(view.ClosingDebit), a.money(view.ClosingCredit))
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Write the ledger to this .xlsx file instead of printing it")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newTrialCmd(a *app) *cobra.Command {
	var asOf, xlsx string

	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate("as-of", asOf)
			if err != nil {
				return err
			}
			tb, err := a.svc.Reporting.TrialBalance(a.ctx, a.tenant, date)
			if err != nil {
				return err
			}
			if xlsx != "" {
				return writeFile(xlsx, func(f *os.File) error { return export.WriteTrialBalance(f, tb, a.exponent) })
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trial balance as of %s\n", tb.AsOf.Format(domain.DateLayout))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ACCOUNT\tLABEL\tMOV DEBIT\tMOV CREDIT\tBAL DEBIT\tBAL CREDIT")
			for _, r := range tb.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.AccountCode, r.AccountLabel,
					a.money(r.MovementDebit), a.money(r.MovementCredit), a.money(r.BalanceDebit), a.money(r.BalanceCredit))
			}
			for _, c := range tb.Classes {
				fmt.Fprintf(tw, "Class %d\t%s\t%s\t%s\t%s\t%s\n", c.Class, c.Name,
					a.money(c.MovementDebit), a.money(c.MovementCredit), a.money(c.BalanceDebit), a.money(c.BalanceCredit))
			}
			fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\t%s\n", a.money(tb.TotalDebit), a.money(tb.TotalCredit))
			if err := tw.Flush(); err != nil {
				return err
			}
			if !tb.Balanced {
				return fmt.Errorf("trial balance is not balanced")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Report date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Write the report to this .xlsx file instead of printing it")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
