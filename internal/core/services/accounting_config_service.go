package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

type accountingConfigService struct {
	BaseService
	configRepo portsrepo.ConfigRepositoryFacade
	accounts   portssvc.AccountRegistrySvc
	locks      *TenantLocks
	now        func() time.Time
}

// ConfigServiceOption is a functional option for configuring the accounting config service
type ConfigServiceOption func(*accountingConfigService)

// WithConfigTenantAuthorizer sets the authorizer guarding configuration updates.
func WithConfigTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) ConfigServiceOption {
	return func(s *accountingConfigService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithConfigTenantLocks shares the per-tenant locks with the journal engine.
func WithConfigTenantLocks(locks *TenantLocks) ConfigServiceOption {
	return func(s *accountingConfigService) {
		s.locks = locks
	}
}

// WithConfigClock overrides the clock used for UpdatedAt.
func WithConfigClock(now func() time.Time) ConfigServiceOption {
	return func(s *accountingConfigService) {
		s.now = now
	}
}

// NewAccountingConfigService creates the configuration service.
func NewAccountingConfigService(configRepo portsrepo.ConfigRepositoryFacade, accounts portssvc.AccountRegistrySvc, options ...ConfigServiceOption) portssvc.AccountingConfigSvc {
	svc := &accountingConfigService{
		configRepo: configRepo,
		accounts:   accounts,
		locks:      NewTenantLocks(),
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountingConfigSvc = (*accountingConfigService)(nil)

// GetConfig returns the stored configuration, or the disabled default when none exists.
func (s *accountingConfigService) GetConfig(ctx context.Context, tenantID string) (*domain.AccountingConfig, error) {
	cfg, err := s.configRepo.GetConfig(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultAccountingConfig(tenantID)
			return &def, nil
		}
		s.LogError(ctx, err, "Failed to load accounting config", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return cfg, nil
}

// UpdateConfig validates every slot before writing anything.
func (s *accountingConfigService) UpdateConfig(ctx context.Context, tenantID string, cfg domain.AccountingConfig, expectedVersion int64, userID string) (*domain.AccountingConfig, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update accounting config",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	current, err := s.GetConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != 0 && expectedVersion != current.Version {
		return nil, fmt.Errorf("accounting config version is %d, expected %d: %w", current.Version, expectedVersion, apperrors.ErrConflict)
	}

	invalid := make(map[domain.ConfigSlot]string)
	for _, slot := range domain.AllConfigSlots {
		code := cfg.Slot(slot)
		if code == "" {
			if cfg.Enabled {
				invalid[slot] = code
			}
			continue
		}
		postable, err := s.accounts.IsPostable(ctx, tenantID, code)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve config slot",
				slog.String("slot", string(slot)),
				slog.String("account_code", code))
			return nil, err
		}
		if !postable {
			invalid[slot] = code
		}
	}
	if len(invalid) > 0 {
		cerr := &domain.ConfigError{Kind: domain.InvalidAccountReference, Slots: invalid}
		s.LogWarn(ctx, "Rejected accounting config update",
			slog.String("tenant_id", tenantID),
			slog.String("reason", cerr.Error()))
		return nil, cerr
	}

	cfg.TenantID = tenantID
	cfg.Version = current.Version + 1
	cfg.UpdatedAt = s.now().UTC()
	cfg.UpdatedBy = userID

	if err := s.configRepo.PutConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to store accounting config", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting config updated",
		slog.String("tenant_id", tenantID),
		slog.Bool("enabled", cfg.Enabled),
		slog.Int64("version", cfg.Version))
	return &cfg, nil
}
