package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ConfigReader reads the accounting configuration record of a tenant.
type ConfigReader interface {
	// GetConfig returns apperrors.ErrNotFound when the tenant never stored a configuration.
	GetConfig(ctx context.Context, tenantID string) (*domain.AccountingConfig, error)
}

// ConfigRepositoryFacade stores the single accounting configuration record of each tenant.
type ConfigRepositoryFacade interface {
	ConfigReader

	// PutConfig replaces the whole record in one write.
	PutConfig(ctx context.Context, cfg domain.AccountingConfig) error
}
