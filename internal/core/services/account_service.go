package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// accountService implements AccountSvcFacade over an account repository.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalReader
	configRepo  portsrepo.ConfigReader
	locks       *TenantLocks
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountTenantAuthorizer sets the authorizer guarding chart-of-accounts changes.
func WithAccountTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithAccountTenantLocks shares the posting locks so deactivation cannot race a submission.
func WithAccountTenantLocks(locks *TenantLocks) AccountServiceOption {
	return func(s *accountService) {
		s.locks = locks
	}
}

// WithAccountConfigReader lets deactivation refuse accounts an enabled configuration slot points to.
func WithAccountConfigReader(configRepo portsrepo.ConfigReader) AccountServiceOption {
	return func(s *accountService) {
		s.configRepo = configRepo
	}
}

// WithAccountClock overrides the clock used for audit fields.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates the account registry. journalRepo backs the referential check on deactivation.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		locks:       NewTenantLocks(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) Lookup(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up account",
				slog.String("tenant_id", tenantID),
				slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (s *accountService) ListByClass(ctx context.Context, tenantID string, class int) ([]domain.Account, error) {
	if !domain.ValidClass(class) {
		return nil, fmt.Errorf("class %d outside %d-%d: %w", class, domain.MinClass, domain.MaxClass, apperrors.ErrValidation)
	}
	accounts, err := s.ListAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *accountService) IsPostable(ctx context.Context, tenantID string, code string) (bool, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return account.IsPostable(), nil
}

func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create account",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, fmt.Errorf("account label is required: %w", apperrors.ErrValidation)
	}
	if !domain.IsNumericCode(code) {
		return nil, fmt.Errorf("account code %q must be digits only: %w", code, apperrors.ErrValidation)
	}
	if !domain.ValidClass(req.Class) {
		return nil, fmt.Errorf("class %d outside %d-%d: %w", req.Class, domain.MinClass, domain.MaxClass, apperrors.ErrValidation)
	}
	if codeClass, _ := domain.ClassFromCode(code); codeClass != req.Class {
		return nil, fmt.Errorf("account code %q does not start with class digit %d: %w", code, req.Class, apperrors.ErrValidation)
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("unknown account kind %q: %w", req.Kind, apperrors.ErrValidation)
	}

	level := 1
	if req.ParentCode != "" {
		parent, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.ParentCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("parent account %q not found: %w", req.ParentCode, apperrors.ErrValidation)
			}
			s.LogError(ctx, err, "Failed to find parent account", slog.String("parent_code", req.ParentCode))
			return nil, err
		}
		if parent.Class != req.Class {
			return nil, fmt.Errorf("parent account %q belongs to class %d: %w", parent.Code, parent.Class, apperrors.ErrValidation)
		}
		level = parent.Level + 1
	}

	account := domain.Account{
		TenantID:   tenantID,
		Code:       code,
		Label:      label,
		Class:      req.Class,
		Kind:       req.Kind,
		Active:     true,
		ParentCode: req.ParentCode,
		Level:      level,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_code", code),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_code", code),
		slog.Int("level", level),
		slog.String("tenant_id", tenantID))
	return &account, nil
}

func (s *accountService) UpdateAccountLabel(ctx context.Context, tenantID string, code string, label string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("account label is required: %w", apperrors.ErrValidation)
	}

	account, err := s.Lookup(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	account.Label = label
	account.Touch(userID, s.now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_code", code))
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, tenantID string, code string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	unlock := s.locks.Lock(tenantID)
	defer unlock()

	account, err := s.Lookup(ctx, tenantID, code)
	if err != nil {
		return err
	}
	if !account.Active {
		return nil
	}

	referenced, err := s.journalRepo.IsAccountReferenced(ctx, tenantID, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account references", slog.String("account_code", code))
		return err
	}
	if referenced {
		s.LogWarn(ctx, "Refusing to deactivate referenced account",
			slog.String("account_code", code),
			slog.String("tenant_id", tenantID))
		return fmt.Errorf("account %q: %w", code, domain.ErrAccountReferenced)
	}

	slot, err := s.configuredSlot(ctx, tenantID, code)
	if err != nil {
		return err
	}
	if slot != "" {
		s.LogWarn(ctx, "Refusing to deactivate configured account",
			slog.String("account_code", code),
			slog.String("slot", string(slot)),
			slog.String("tenant_id", tenantID))
		return fmt.Errorf("account %q is the %s account: %w", code, slot, domain.ErrAccountConfigured)
	}

	account.Active = false
	account.Touch(userID, s.now())
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_code", code))
		return err
	}

	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_code", code),
		slog.String("tenant_id", tenantID))
	return nil
}

// configuredSlot returns the first slot of the tenant's enabled configuration that names code.
func (s *accountService) configuredSlot(ctx context.Context, tenantID string, code string) (domain.ConfigSlot, error) {
	if s.configRepo == nil {
		return "", nil
	}
	cfg, err := s.configRepo.GetConfig(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		s.LogError(ctx, err, "Failed to load accounting config", slog.String("tenant_id", tenantID))
		return "", err
	}
	if !cfg.Enabled {
		return "", nil
	}
	for _, slot := range domain.AllConfigSlots {
		if cfg.Slot(slot) == code {
			return slot, nil
		}
	}
	return "", nil
}
