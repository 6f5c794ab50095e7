package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// TenantAuthorizerSvc decides whether a user may act on a tenant.
type TenantAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden unless userID holds at least requiredRole.
	AuthorizeUserAction(ctx context.Context, userID string, tenantID string, requiredRole domain.TenantRole) error
	// CanPostManualEntry is the boolean form used by callers that only need a yes/no.
	CanPostManualEntry(ctx context.Context, userID string, tenantID string) bool
}
