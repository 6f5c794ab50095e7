package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingService defines the interface for generating financial reports
type ReportingService interface {
	// TrialBalance aggregates every account's balance as of the given date, subtotaled by class.
	TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error)
}
