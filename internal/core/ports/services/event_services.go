package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// EventSvc turns business events into posted automatic entries.
type EventSvc interface {
	Process(ctx context.Context, tenantID string, event domain.BusinessEvent) (*domain.EventResult, error)
}
