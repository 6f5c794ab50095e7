package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// JournalWriterSvc posts entries. There is no update or delete of a posted entry.
type JournalWriterSvc interface {
	// Submit validates and posts an entry. Manual entries are authorized against userID first.
	Submit(ctx context.Context, tenantID string, entry domain.JournalEntry, userID string) (*domain.JournalEntry, error)
	// Reverse posts a new entry offsetting entryID line for line.
	Reverse(ctx context.Context, tenantID string, entryID string, date time.Time, label string, userID string) (*domain.JournalEntry, error)
}

// JournalReaderSvc reads posted entries.
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalWriterSvc
	JournalReaderSvc
}
