package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// LedgerSvc projects the general ledger of an account.
type LedgerSvc interface {
	Project(ctx context.Context, tenantID string, accountCode string, from time.Time, to time.Time) (*domain.LedgerView, error)
}
