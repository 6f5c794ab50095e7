package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// AccountRegistrySvc is the read contract the ledger engine relies on.
type AccountRegistrySvc interface {
	Lookup(ctx context.Context, tenantID string, code string) (*domain.Account, error)
	ListByClass(ctx context.Context, tenantID string, class int) ([]domain.Account, error)
	IsPostable(ctx context.Context, tenantID string, code string) (bool, error)
}

// AccountWriterSvc holds the configuration actions on the chart of accounts.
type AccountWriterSvc interface {
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	UpdateAccountLabel(ctx context.Context, tenantID string, code string, label string, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, tenantID string, code string, userID string) error
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountRegistrySvc
	AccountWriterSvc
}
