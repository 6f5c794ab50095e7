package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/spf13/cobra"
)

func newPostEventCmd(a *app) *cobra.Command {
	var (
		ref, label, date, means string
		ht, vat, ttc, amount    string
	)

	cmd := &cobra.Command{
		Use:   "post-event [type]",
		Short: "Process a business event into an automatic entry",
		Long: "Types: SUPPLIER_INVOICE_RECORDED, CLIENT_INVOICE_ISSUED (use --ht --vat --ttc), " +
			"SUPPLIER_PAYMENT_MADE, CLIENT_PAYMENT_RECEIVED (use --amount --means).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := domain.BusinessEvent{
				Type:        domain.EventType(strings.ToUpper(args[0])),
				DocumentRef: ref,
				Label:       label,
				Means:       domain.PaymentMeans(strings.ToLower(means)),
			}
			var err error
			if event.Date, err = parseDate("date", date); err != nil {
				return err
			}
			for _, f := range []struct {
				name, value string
				dst         *int64
			}{
				{"ht", ht, &event.AmountHT},
				{"vat", vat, &event.AmountVAT},
				{"ttc", ttc, &event.AmountTTC},
				{"amount", amount, &event.Amount},
			} {
				if *f.dst, err = parseAmount(f.name, f.value, a.exponent); err != nil {
					return err
				}
			}

			result, err := a.svc.Event.Process(a.ctx, a.tenant, event)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Outcome: %s\n", result.Outcome)
			if result.Entry != nil {
				a.printEntry(out, result.Entry)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Source document reference")
	cmd.Flags().StringVar(&label, "label", "", "Entry label")
	cmd.Flags().StringVar(&date, "date", "", "Document date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&ht, "ht", "", "Invoice amount before tax")
	cmd.Flags().StringVar(&vat, "vat", "", "Invoice VAT amount")
	cmd.Flags().StringVar(&ttc, "ttc", "", "Invoice amount including tax")
	cmd.Flags().StringVar(&amount, "amount", "", "Payment amount")
	cmd.Flags().StringVar(&means, "means", "", "Payment means: bank or cash")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}
