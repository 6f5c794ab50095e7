package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Inspect and reverse posted entries",
	}

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a posted entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.svc.Journal.GetEntry(a.ctx, a.tenant, args[0])
			if err != nil {
				return err
			}
			a.printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	var date, label string
	reverse := &cobra.Command{
		Use:   "reverse [id]",
		Short: "Post an entry offsetting a posted entry line for line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var when time.Time
			if date != "" {
				d, err := parseDate("date", date)
				if err != nil {
					return err
				}
				when = d
			}
			reversal, err := a.svc.Journal.Reverse(a.ctx, a.tenant, args[0], when, label, a.user)
			if err != nil {
				return err
			}
			a.printEntry(cmd.OutOrStdout(), reversal)
			return nil
		},
	}
	reverse.Flags().StringVar(&date, "date", "", "Reversal date YYYY-MM-DD (default: the original entry's date)")
	reverse.Flags().StringVar(&label, "label", "", "Reversal label")

	cmd.AddCommand(show, reverse)
	return cmd
}

func (a *app) printEntry(out io.Writer, e *domain.JournalEntry) {
	fmt.Fprintf(out, "Entry #%d  %s  %s  %s\n", e.Number, e.Date.Format(domain.DateLayout), e.JournalCode, e.Label)
	fmt.Fprintf(out, "ID: %s  Origin: %s", e.ID, e.Origin)
	if e.OriginDocumentRef != "" {
		fmt.Fprintf(out, " (%s %s)", e.OriginDocumentType, e.OriginDocumentRef)
	}
	if e.ReversesEntryID != "" {
		fmt.Fprintf(out, "  Reverses: %s", e.ReversesEntryID)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tACCOUNT\tDEBIT\tCREDIT\t")
	for _, l := range e.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", l.LineNo, l.AccountCode, a.money(l.Debit), a.money(l.Credit))
	}
	fmt.Fprintf(tw, "\tTOTAL\t%s\t%s\t\n", a.money(e.TotalDebit()), a.money(e.TotalCredit()))
	tw.Flush()
}
