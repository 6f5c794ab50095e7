package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

// journalService is the journal entry engine: validation gate, numbering and atomic posting.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accounts    portssvc.AccountRegistrySvc
	locks       *TenantLocks
	now         func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalTenantAuthorizer sets the authorizer consulted for manual entries.
func WithJournalTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithJournalTenantLocks sets the per-tenant lock registry.
func WithJournalTenantLocks(locks *TenantLocks) JournalServiceOption {
	return func(s *journalService) {
		s.locks = locks
	}
}

// WithJournalClock overrides the clock used for PostedAt.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates the journal entry engine.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accounts portssvc.AccountRegistrySvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accounts:    accounts,
		locks:       NewTenantLocks(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// Submit validates and posts an entry. On any error nothing has been written.
func (s *journalService) Submit(ctx context.Context, tenantID string, entry domain.JournalEntry, userID string) (*domain.JournalEntry, error) {
	if entry.Origin == "" {
		entry.Origin = domain.OriginManual
	}
	if entry.Origin == domain.OriginManual {
		if s.TenantAuthorizer == nil || !s.TenantAuthorizer.CanPostManualEntry(ctx, userID, tenantID) {
			err := fmt.Errorf("user %s may not post manual entries: %w", userID, apperrors.ErrForbidden)
			s.LogError(ctx, err, "User not authorized to post manual entry",
				slog.String("user_id", userID),
				slog.String("tenant_id", tenantID))
			return nil, err
		}
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	return s.postLocked(ctx, tenantID, entry, userID)
}

func (s *journalService) postLocked(ctx context.Context, tenantID string, entry domain.JournalEntry, userID string) (*domain.JournalEntry, error) {
	entry = entry.Clone()
	entry.TenantID = tenantID
	entry.Date = domain.NormalizeDate(entry.Date)
	entry.Label = strings.TrimSpace(entry.Label)

	if err := s.validate(ctx, tenantID, entry); err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			s.LogWarn(ctx, "Journal entry rejected",
				slog.String("tenant_id", tenantID),
				slog.String("kind", string(ve.Kind)),
				slog.String("reason", ve.Error()))
		}
		return nil, err
	}

	if entry.Origin == domain.OriginAutomatic && entry.HasOriginDocument() {
		existing, err := s.journalRepo.FindEntryByOrigin(ctx, tenantID, entry.OriginDocumentType, entry.OriginDocumentRef)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check origin document", slog.String("document_ref", entry.OriginDocumentRef))
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%s %s already posted as entry #%d: %w",
				entry.OriginDocumentType, entry.OriginDocumentRef, existing.Number, apperrors.ErrDuplicate)
		}
	}

	number, err := s.journalRepo.NextEntryNumber(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate entry number", slog.String("tenant_id", tenantID))
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate entry id: %w", err)
	}
	entry.ID = id.String()
	entry.Number = number
	entry.Status = domain.Posted
	entry.PostedAt = s.now().UTC()
	entry.PostedBy = userID
	for i := range entry.Lines {
		entry.Lines[i].LineNo = i + 1
	}

	if err := s.journalRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to persist journal entry",
			slog.String("tenant_id", tenantID),
			slog.Int64("number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("tenant_id", tenantID),
		slog.String("entry_id", entry.ID),
		slog.Int64("number", entry.Number),
		slog.String("origin", string(entry.Origin)),
		slog.Int64("total", entry.TotalDebit()))
	return &entry, nil
}

// validate applies the entry rules in their fixed order; the first failure wins.
func (s *journalService) validate(ctx context.Context, tenantID string, entry domain.JournalEntry) error {
	if len(entry.Lines) < 2 {
		return domain.NewEntryError(domain.TooFewLines)
	}

	for i, line := range entry.Lines {
		postable, err := s.accounts.IsPostable(ctx, tenantID, line.AccountCode)
		if err != nil {
			return err
		}
		if !postable {
			return domain.NewLineError(domain.UnknownAccount, i, line.AccountCode)
		}
	}

	for i, line := range entry.Lines {
		if !line.HasSingleSide() {
			return domain.NewLineError(domain.MixedOrEmptyLine, i, line.AccountCode)
		}
	}

	debit, credit, overflowAt := accounting.LineTotals(entry.Lines)
	if overflowAt >= 0 {
		return domain.NewLineError(domain.AmountOutOfRange, overflowAt, entry.Lines[overflowAt].AccountCode)
	}
	if debit != credit {
		ve := domain.NewEntryError(domain.Unbalanced)
		ve.Gap = credit - debit
		return ve
	}

	if entry.Date.IsZero() {
		ve := domain.NewEntryError(domain.MissingField)
		ve.Field = "date"
		return ve
	}
	if entry.Label == "" {
		ve := domain.NewEntryError(domain.MissingField)
		ve.Field = "label"
		return ve
	}
	return nil
}

// Reverse posts a manual entry that offsets entryID. The original is left untouched.
func (s *journalService) Reverse(ctx context.Context, tenantID string, entryID string, date time.Time, label string, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAccountant); err != nil {
		s.LogError(ctx, err, "User not authorized to reverse entry",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	original, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if original.ReversesEntryID != "" {
		return nil, fmt.Errorf("entry #%d is itself a reversal: %w", original.Number, domain.ErrAlreadyReversed)
	}
	existing, err := s.journalRepo.FindReversalOf(ctx, tenantID, entryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("entry #%d reversed by entry #%d: %w", original.Number, existing.Number, domain.ErrAlreadyReversed)
	}

	if date.IsZero() {
		date = original.Date
	}
	if strings.TrimSpace(label) == "" {
		label = fmt.Sprintf("Reversal of entry #%d", original.Number)
	}

	reversal := domain.JournalEntry{
		Date:            date,
		JournalCode:     original.JournalCode,
		Label:           label,
		Origin:          domain.OriginManual,
		ReversesEntryID: original.ID,
		Lines:           accounting.ReverseLines(original.Lines),
		Status:          domain.Draft,
	}

	posted, err := s.postLocked(ctx, tenantID, reversal, userID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_entry_id", original.ID),
		slog.String("reversal_entry_id", posted.ID))
	return posted, nil
}

func (s *journalService) GetEntry(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, fmt.Errorf("from date after to date: %w", apperrors.ErrValidation)
	}
	entries, err := s.journalRepo.QueryEntries(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return entries, nil
}
