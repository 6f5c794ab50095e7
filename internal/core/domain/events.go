package domain

import "time"

// EventType names a business event emitted by the purchasing, sales or treasury modules.
type EventType string

const (
	SupplierInvoiceRecorded EventType = "SUPPLIER_INVOICE_RECORDED"
	SupplierPaymentMade     EventType = "SUPPLIER_PAYMENT_MADE"
	ClientInvoiceIssued     EventType = "CLIENT_INVOICE_ISSUED"
	ClientPaymentReceived   EventType = "CLIENT_PAYMENT_RECEIVED"
)

// PaymentMeans selects the treasury account a payment moves through.
type PaymentMeans string

const (
	MeansBank PaymentMeans = "bank"
	MeansCash PaymentMeans = "cash"
)

// BusinessEvent is the payload a source module hands to the ledger.
// Invoices use AmountHT, AmountVAT and AmountTTC; payments use Amount and Means.
type BusinessEvent struct {
	Type        EventType    `json:"type"`
	DocumentRef string       `json:"documentRef"`
	Date        time.Time    `json:"date"`
	Label       string       `json:"label,omitempty"`
	AmountHT    int64        `json:"amountHT,omitempty"`
	AmountVAT   int64        `json:"amountVAT,omitempty"`
	AmountTTC   int64        `json:"amountTTC,omitempty"`
	Amount      int64        `json:"amount,omitempty"`
	Means       PaymentMeans `json:"means,omitempty"`
}

// IsInvoice reports whether the event carries HT/VAT/TTC amounts.
func (e BusinessEvent) IsInvoice() bool {
	return e.Type == SupplierInvoiceRecorded || e.Type == ClientInvoiceIssued
}

// GenerationOutcome is the tag of a GenerationResult.
type GenerationOutcome string

const (
	OutcomeProposed      GenerationOutcome = "PROPOSED"
	OutcomeSuppressed    GenerationOutcome = "SUPPRESSED"
	OutcomePosted        GenerationOutcome = "POSTED"
	OutcomeAlreadyPosted GenerationOutcome = "ALREADY_POSTED"
)

// GenerationResult is either a proposed entry or an explicit suppression.
type GenerationResult struct {
	Outcome GenerationOutcome
	Entry   *JournalEntry
}

// EventResult is what processing a business event produced.
type EventResult struct {
	Outcome GenerationOutcome `json:"outcome"`
	Entry   *JournalEntry     `json:"entry,omitempty"`
}
