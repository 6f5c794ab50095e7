package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// JournalReader defines read operations over posted entries
type JournalReader interface {
	// FindEntryByID retrieves a posted entry with its lines.
	FindEntryByID(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error)

	// FindEntryByOrigin retrieves the entry generated for a source document, if any.
	FindEntryByOrigin(ctx context.Context, tenantID string, documentType string, documentRef string) (*domain.JournalEntry, error)

	// FindReversalOf retrieves the entry that reverses entryID, if any.
	FindReversalOf(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error)

	// QueryEntries returns entries with their lines ordered by (date, number).
	// When filter.AccountCodes is set only entries touching one of them are returned.
	QueryEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error)

	// NextEntryNumber returns the number the next posted entry of the tenant should carry.
	NextEntryNumber(ctx context.Context, tenantID string) (int64, error)

	// IsAccountReferenced reports whether any posted line uses the account.
	IsAccountReferenced(ctx context.Context, tenantID string, accountCode string) (bool, error)
}

// JournalWriter defines the single write operation on entries. Posted entries are append-only.
type JournalWriter interface {
	// AppendEntry stores an entry and all of its lines as one unit.
	// Returns apperrors.ErrConflict if the entry number is already used.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
