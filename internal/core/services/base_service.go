package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TenantAuthorizer portssvc.TenantAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a tenant.
// Without an authorizer every guarded action is refused.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	if s.TenantAuthorizer == nil {
		s.LogWarn(ctx, "No tenant authorizer configured, refusing guarded action",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return s.TenantAuthorizer.AuthorizeUserAction(ctx, userID, tenantID, requiredRole)
}

// overflowed logs and returns an ErrAmountOverflow for an aggregate that left the int64 range.
func (s *BaseService) overflowed(ctx context.Context, tenantID string, what string) error {
	err := fmt.Errorf("%s for tenant %s: %w", what, tenantID, domain.ErrAmountOverflow)
	s.LogError(ctx, err, "Aggregate out of range", slog.String("tenant_id", tenantID))
	return err
}
