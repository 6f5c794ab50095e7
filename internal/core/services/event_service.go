package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// SystemUserID is recorded as PostedBy on automatic entries.
const SystemUserID = domain.SystemActor

type eventService struct {
	BaseService
	config      portssvc.AccountingConfigSvc
	journal     portssvc.JournalWriterSvc
	journalRepo portsrepo.JournalReader
}

// NewEventService wires the generation rules to the journal engine.
func NewEventService(config portssvc.AccountingConfigSvc, journal portssvc.JournalWriterSvc, journalRepo portsrepo.JournalReader) portssvc.EventSvc {
	return &eventService{
		config:      config,
		journal:     journal,
		journalRepo: journalRepo,
	}
}

var _ portssvc.EventSvc = (*eventService)(nil)

// Process generates and posts the entry for a business event.
// Replaying an event whose document was already posted returns the existing entry.
func (s *eventService) Process(ctx context.Context, tenantID string, event domain.BusinessEvent) (*domain.EventResult, error) {
	cfg, err := s.config.GetConfig(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounting config", slog.String("tenant_id", tenantID))
		return nil, err
	}

	result, err := GenerateEntry(event, *cfg)
	if err != nil {
		s.LogWarn(ctx, "Malformed business event",
			slog.String("tenant_id", tenantID),
			slog.String("event_type", string(event.Type)),
			slog.String("document_ref", event.DocumentRef),
			slog.String("reason", err.Error()))
		return nil, err
	}
	if result.Outcome == domain.OutcomeSuppressed {
		s.LogDebug(ctx, "Automatic accounting disabled, event ignored",
			slog.String("tenant_id", tenantID),
			slog.String("event_type", string(event.Type)))
		return &domain.EventResult{Outcome: domain.OutcomeSuppressed}, nil
	}

	posted, err := s.journal.Submit(ctx, tenantID, *result.Entry, SystemUserID)
	if errors.Is(err, apperrors.ErrDuplicate) {
		existing, findErr := s.journalRepo.FindEntryByOrigin(ctx, tenantID, string(event.Type), event.DocumentRef)
		if findErr != nil {
			s.LogError(ctx, findErr, "Failed to load already posted entry", slog.String("document_ref", event.DocumentRef))
			return nil, findErr
		}
		s.LogInfo(ctx, "Event already posted",
			slog.String("tenant_id", tenantID),
			slog.String("document_ref", event.DocumentRef),
			slog.Int64("number", existing.Number))
		return &domain.EventResult{Outcome: domain.OutcomeAlreadyPosted, Entry: existing}, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.EventResult{Outcome: domain.OutcomePosted, Entry: posted}, nil
}
