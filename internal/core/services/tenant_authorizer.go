package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// rosterAuthorizer authorizes users from an in-memory roster of tenant members.
type rosterAuthorizer struct {
	BaseService
	mu      sync.RWMutex
	members map[string]map[string]domain.TenantRole
}

// RosterAuthorizer is the tenant authorizer backed by a member roster.
type RosterAuthorizer interface {
	portssvc.TenantAuthorizerSvc
	// SetMembers replaces the roster of one tenant.
	SetMembers(tenantID string, members []domain.TenantMember)
}

// NewRosterAuthorizer creates an authorizer seeded with the given memberships.
func NewRosterAuthorizer(members ...domain.TenantMember) RosterAuthorizer {
	a := &rosterAuthorizer{members: make(map[string]map[string]domain.TenantRole)}
	for _, m := range members {
		a.grant(m)
	}
	return a
}

var _ portssvc.TenantAuthorizerSvc = (*rosterAuthorizer)(nil)

func (a *rosterAuthorizer) grant(m domain.TenantMember) {
	roles, ok := a.members[m.TenantID]
	if !ok {
		roles = make(map[string]domain.TenantRole)
		a.members[m.TenantID] = roles
	}
	roles[m.UserID] = m.Role
}

func (a *rosterAuthorizer) SetMembers(tenantID string, members []domain.TenantMember) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.members, tenantID)
	for _, m := range members {
		m.TenantID = tenantID
		a.grant(m)
	}
}

func (a *rosterAuthorizer) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	a.mu.RLock()
	role, ok := a.members[tenantID][userID]
	a.mu.RUnlock()

	if !ok {
		a.LogDebug(ctx, "User not a member of tenant",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return apperrors.ErrForbidden
	}
	if !role.Satisfies(requiredRole) {
		a.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("user_role", string(role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}

func (a *rosterAuthorizer) CanPostManualEntry(ctx context.Context, userID, tenantID string) bool {
	return a.AuthorizeUserAction(ctx, userID, tenantID, domain.RoleAccountant) == nil
}
