package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its header row and line rows
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.JournalLine) {
	header := models.JournalEntry{
		EntryID:            d.ID,
		TenantID:           d.TenantID,
		EntryNumber:        d.Number,
		EntryDate:          d.Date,
		JournalCode:        d.JournalCode,
		Label:              d.Label,
		Origin:             string(d.Origin),
		OriginDocumentType: nullable(d.OriginDocumentType),
		OriginDocumentRef:  nullable(d.OriginDocumentRef),
		ReversesEntryID:    nullable(d.ReversesEntryID),
		Status:             string(d.Status),
		PostedAt:           d.PostedAt,
		PostedBy:           d.PostedBy,
	}
	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = ToModelJournalLine(d.ID, l)
	}
	return header, lines
}

// ToModelJournalLine converts a domain line to a model line of the given entry
func ToModelJournalLine(entryID string, d domain.JournalEntryLine) models.JournalLine {
	return models.JournalLine{
		EntryID:     entryID,
		LineNo:      d.LineNo,
		AccountCode: d.AccountCode,
		Label:       d.Label,
		Debit:       d.Debit,
		Credit:      d.Credit,
	}
}

// ToDomainJournalEntry converts a header row and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	e := domain.JournalEntry{
		ID:                 m.EntryID,
		TenantID:           m.TenantID,
		Number:             m.EntryNumber,
		Date:               domain.NormalizeDate(m.EntryDate),
		JournalCode:        m.JournalCode,
		Label:              m.Label,
		Origin:             domain.EntryOrigin(m.Origin),
		OriginDocumentType: deref(m.OriginDocumentType),
		OriginDocumentRef:  deref(m.OriginDocumentRef),
		ReversesEntryID:    deref(m.ReversesEntryID),
		Status:             domain.EntryStatus(m.Status),
		PostedAt:           m.PostedAt.UTC(),
		PostedBy:           m.PostedBy,
		Lines:              make([]domain.JournalEntryLine, len(lines)),
	}
	for i, l := range lines {
		e.Lines[i] = ToDomainJournalLine(l)
	}
	return e
}

// ToDomainJournalLine converts a model line to a domain line
func ToDomainJournalLine(m models.JournalLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineNo:      m.LineNo,
		AccountCode: m.AccountCode,
		Label:       m.Label,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}
