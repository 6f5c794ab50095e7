package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// BusinessEventRequest is a business event emitted by a source module.
type BusinessEventRequest struct {
	Type        domain.EventType    `json:"type" binding:"required,oneof=SUPPLIER_INVOICE_RECORDED SUPPLIER_PAYMENT_MADE CLIENT_INVOICE_ISSUED CLIENT_PAYMENT_RECEIVED"`
	DocumentRef string              `json:"documentRef" binding:"required,max=128"`
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	Label       string              `json:"label" binding:"max=255"`
	AmountHT    int64               `json:"amountHT"`
	AmountVAT   int64               `json:"amountVAT"`
	AmountTTC   int64               `json:"amountTTC"`
	Amount      int64               `json:"amount"`
	Means       domain.PaymentMeans `json:"means" binding:"omitempty,oneof=bank cash"`
}

// ToDomain converts the request to a business event. The date has already been validated by binding.
func (r BusinessEventRequest) ToDomain() domain.BusinessEvent {
	date, _ := time.Parse(domain.DateLayout, r.Date)
	return domain.BusinessEvent{
		Type:        r.Type,
		DocumentRef: r.DocumentRef,
		Date:        date,
		Label:       r.Label,
		AmountHT:    r.AmountHT,
		AmountVAT:   r.AmountVAT,
		AmountTTC:   r.AmountTTC,
		Amount:      r.Amount,
		Means:       r.Means,
	}
}

// EventResultResponse reports what processing an event produced.
type EventResultResponse struct {
	Outcome domain.GenerationOutcome `json:"outcome"`
	Entry   *JournalEntryResponse    `json:"entry,omitempty"`
}

// ToEventResultResponse converts a domain event result.
func ToEventResultResponse(r *domain.EventResult, exponent int) EventResultResponse {
	resp := EventResultResponse{Outcome: r.Outcome}
	if r.Entry != nil {
		entry := ToJournalEntryResponse(r.Entry, exponent)
		resp.Entry = &entry
	}
	return resp
}
