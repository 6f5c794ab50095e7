package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode retrieves an account by its code within a tenant.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// ListAccounts retrieves every account of a tenant ordered by code.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate if the code is taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces label, active flag and audit fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
