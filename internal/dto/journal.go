package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CreateJournalLineRequest is one line of a manual entry, amounts in minor units.
type CreateJournalLineRequest struct {
	AccountCode string `json:"accountCode"`
	Label       string `json:"label"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
}

// CreateJournalEntryRequest defines the data needed to post a manual entry.
// Field rules are enforced by the journal engine so errors come back in a fixed order.
type CreateJournalEntryRequest struct {
	Date        string                     `json:"date" example:"2024-01-31"`
	JournalCode string                     `json:"journalCode" example:"Miscellaneous"`
	Label       string                     `json:"label"`
	Lines       []CreateJournalLineRequest `json:"lines"`
}

// ToDomain converts the request to a draft manual entry. An unparseable date yields the zero date.
func (r CreateJournalEntryRequest) ToDomain(tenantID string) domain.JournalEntry {
	var date time.Time
	if r.Date != "" {
		if parsed, err := time.Parse(domain.DateLayout, r.Date); err == nil {
			date = parsed
		}
	}
	journalCode := r.JournalCode
	if journalCode == "" {
		journalCode = domain.JournalMiscellaneous
	}
	lines := make([]domain.JournalEntryLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalEntryLine{
			AccountCode: l.AccountCode,
			Label:       l.Label,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return domain.JournalEntry{
		TenantID:    tenantID,
		Date:        date,
		JournalCode: journalCode,
		Label:       r.Label,
		Origin:      domain.OriginManual,
		Status:      domain.Draft,
		Lines:       lines,
	}
}

// ReverseJournalEntryRequest defines the optional overrides for a reversal.
type ReverseJournalEntryRequest struct {
	Date  string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Label string `json:"label" binding:"max=255"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineNo      int    `json:"lineNo"`
	AccountCode string `json:"accountCode"`
	Label       string `json:"label"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// JournalEntryResponse defines the data returned for a posted entry.
type JournalEntryResponse struct {
	ID                 string                `json:"id"`
	Number             int64                 `json:"number"`
	Date               string                `json:"date"`
	JournalCode        string                `json:"journalCode"`
	Label              string                `json:"label"`
	Origin             domain.EntryOrigin    `json:"origin"`
	OriginDocumentType string                `json:"originDocumentType,omitempty"`
	OriginDocumentRef  string                `json:"originDocumentRef,omitempty"`
	ReversesEntryID    string                `json:"reversesEntryID,omitempty"`
	Status             domain.EntryStatus    `json:"status"`
	Lines              []JournalLineResponse `json:"lines"`
	TotalDebit         Amount                `json:"totalDebit"`
	TotalCredit        Amount                `json:"totalCredit"`
	PostedAt           time.Time             `json:"postedAt"`
	PostedBy           string                `json:"postedBy,omitempty"`
}

// ToJournalEntryResponse converts a domain entry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry, exponent int) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineNo:      l.LineNo,
			AccountCode: l.AccountCode,
			Label:       l.Label,
			Debit:       NewAmount(l.Debit, exponent),
			Credit:      NewAmount(l.Credit, exponent),
		}
	}
	return JournalEntryResponse{
		ID:                 e.ID,
		Number:             e.Number,
		Date:               e.Date.Format(domain.DateLayout),
		JournalCode:        e.JournalCode,
		Label:              e.Label,
		Origin:             e.Origin,
		OriginDocumentType: e.OriginDocumentType,
		OriginDocumentRef:  e.OriginDocumentRef,
		ReversesEntryID:    e.ReversesEntryID,
		Status:             e.Status,
		Lines:              lines,
		TotalDebit:         NewAmount(e.TotalDebit(), exponent),
		TotalCredit:        NewAmount(e.TotalCredit(), exponent),
		PostedAt:           e.PostedAt,
		PostedBy:           e.PostedBy,
	}
}

// ListJournalEntriesParams defines the query parameters for listing entries.
type ListJournalEntriesParams struct {
	From        string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To          string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	JournalCode string `form:"journalCode"`
	Origin      string `form:"origin" binding:"omitempty,oneof=AUTOMATIC MANUAL"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken   string `form:"nextToken"`
}

// ListJournalEntriesResponse is a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToListJournalEntriesResponse converts a page of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string, exponent int) ListJournalEntriesResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i], exponent)
	}
	return ListJournalEntriesResponse{Entries: out, NextToken: nextToken}
}

// ValidationErrorResponse carries the detail of a refused entry.
type ValidationErrorResponse struct {
	Error       string `json:"error"`
	Kind        string `json:"kind"`
	Line        int    `json:"line,omitempty"`
	AccountCode string `json:"accountCode,omitempty"`
	Field       string `json:"field,omitempty"`
	Gap         int64  `json:"gap,omitempty"`
}

// ToValidationErrorResponse converts a domain validation error.
func ToValidationErrorResponse(ve *domain.ValidationError) ValidationErrorResponse {
	resp := ValidationErrorResponse{
		Error:       ve.Error(),
		Kind:        string(ve.Kind),
		AccountCode: ve.AccountCode,
		Field:       ve.Field,
		Gap:         ve.Gap,
	}
	if ve.LineIndex >= 0 {
		resp.Line = ve.LineIndex + 1
	}
	return resp
}
