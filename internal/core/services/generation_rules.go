package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

var eventLabels = map[domain.EventType]string{
	domain.SupplierInvoiceRecorded: "Supplier invoice",
	domain.SupplierPaymentMade:     "Supplier payment",
	domain.ClientInvoiceIssued:     "Client invoice",
	domain.ClientPaymentReceived:   "Client payment",
}

// GenerateEntry maps a business event to a proposed automatic entry.
// It performs no I/O and never returns a partial entry: the result is either a
// balanced proposal, an explicit suppression, or a *domain.MalformedEventError.
func GenerateEntry(event domain.BusinessEvent, cfg domain.AccountingConfig) (domain.GenerationResult, error) {
	if !cfg.Enabled {
		return domain.GenerationResult{Outcome: domain.OutcomeSuppressed}, nil
	}
	if err := checkEvent(event); err != nil {
		return domain.GenerationResult{}, err
	}

	var (
		journalCode string
		lines       []domain.JournalEntryLine
	)
	label := event.Label
	if label == "" {
		label = eventLabels[event.Type] + " " + event.DocumentRef
	}

	switch event.Type {
	case domain.SupplierInvoiceRecorded:
		journalCode = domain.JournalPurchases
		lines = appendDebit(lines, cfg.Purchases, label, event.AmountHT)
		lines = appendDebit(lines, cfg.VATDeductible, label, event.AmountVAT)
		lines = appendCredit(lines, cfg.Suppliers, label, event.AmountTTC)
	case domain.ClientInvoiceIssued:
		journalCode = domain.JournalSales
		lines = appendDebit(lines, cfg.Clients, label, event.AmountTTC)
		lines = appendCredit(lines, cfg.Sales, label, event.AmountHT)
		lines = appendCredit(lines, cfg.VATCollected, label, event.AmountVAT)
	case domain.SupplierPaymentMade:
		treasury, code := treasuryAccount(event.Means, cfg)
		journalCode = code
		lines = appendDebit(lines, cfg.Suppliers, label, event.Amount)
		lines = appendCredit(lines, treasury, label, event.Amount)
	case domain.ClientPaymentReceived:
		treasury, code := treasuryAccount(event.Means, cfg)
		journalCode = code
		lines = appendDebit(lines, treasury, label, event.Amount)
		lines = appendCredit(lines, cfg.Clients, label, event.Amount)
	}

	for i, l := range lines {
		if l.AccountCode == "" {
			return domain.GenerationResult{}, &domain.MalformedEventError{
				EventType: event.Type,
				Reason:    fmt.Sprintf("line %d has no configured account", i+1),
			}
		}
	}

	entry := &domain.JournalEntry{
		Date:               domain.NormalizeDate(event.Date),
		JournalCode:        journalCode,
		Label:              label,
		Origin:             domain.OriginAutomatic,
		OriginDocumentType: string(event.Type),
		OriginDocumentRef:  event.DocumentRef,
		Lines:              lines,
		Status:             domain.Draft,
	}
	if !entry.IsBalanced() {
		return domain.GenerationResult{}, &domain.MalformedEventError{EventType: event.Type, Reason: "generated entry does not balance"}
	}
	return domain.GenerationResult{Outcome: domain.OutcomeProposed, Entry: entry}, nil
}

func checkEvent(event domain.BusinessEvent) error {
	malformed := func(format string, args ...any) error {
		return &domain.MalformedEventError{EventType: event.Type, Reason: fmt.Sprintf(format, args...)}
	}

	if _, ok := eventLabels[event.Type]; !ok {
		return malformed("unknown event type")
	}
	if strings.TrimSpace(event.DocumentRef) == "" {
		return malformed("document reference is required")
	}
	if event.Date.IsZero() {
		return malformed("date is required")
	}

	if event.IsInvoice() {
		if event.AmountHT < 0 || event.AmountVAT < 0 {
			return malformed("amounts must not be negative")
		}
		if event.AmountTTC <= 0 {
			return malformed("amountTTC must be positive")
		}
		if total, ok := domain.AddAmount(event.AmountHT, event.AmountVAT); !ok || total != event.AmountTTC {
			return malformed("amountHT %d + amountVAT %d != amountTTC %d", event.AmountHT, event.AmountVAT, event.AmountTTC)
		}
		return nil
	}

	if event.Amount <= 0 {
		return malformed("amount must be positive")
	}
	if event.Means != domain.MeansBank && event.Means != domain.MeansCash {
		return malformed("payment means must be %q or %q", domain.MeansBank, domain.MeansCash)
	}
	return nil
}

func treasuryAccount(means domain.PaymentMeans, cfg domain.AccountingConfig) (accountCode string, journalCode string) {
	if means == domain.MeansCash {
		return cfg.Cash, domain.JournalCash
	}
	return cfg.Bank, domain.JournalBank
}

// Zero amounts produce no line; a line always carries exactly one positive side.
func appendDebit(lines []domain.JournalEntryLine, accountCode, label string, amount int64) []domain.JournalEntryLine {
	if amount == 0 {
		return lines
	}
	return append(lines, domain.JournalEntryLine{AccountCode: accountCode, Label: label, Debit: amount})
}

func appendCredit(lines []domain.JournalEntryLine, accountCode, label string, amount int64) []domain.JournalEntryLine {
	if amount == 0 {
		return lines
	}
	return append(lines, domain.JournalEntryLine{AccountCode: accountCode, Label: label, Credit: amount})
}
