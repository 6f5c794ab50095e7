package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// AccountingConfigSvc reads and atomically replaces a tenant's accounting configuration.
type AccountingConfigSvc interface {
	GetConfig(ctx context.Context, tenantID string) (*domain.AccountingConfig, error)
	// UpdateConfig replaces the whole configuration. A non-zero expectedVersion must match the stored version.
	UpdateConfig(ctx context.Context, tenantID string, cfg domain.AccountingConfig, expectedVersion int64, userID string) (*domain.AccountingConfig, error)
}
