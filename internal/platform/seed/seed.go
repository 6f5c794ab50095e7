// Package seed loads tenants, their chart of accounts and accounting configuration from YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the top-level document of a seed file.
type File struct {
	Tenants []Tenant `yaml:"tenants" validate:"required,min=1,dive"`
}

// Tenant lists one tenant's members, accounts and configuration.
// Accounts are created in file order, so parents must precede their children.
type Tenant struct {
	ID       string                             `yaml:"id" validate:"required"`
	Members  []Member                           `yaml:"members" validate:"required,min=1,dive"`
	Accounts []dto.CreateAccountRequest         `yaml:"accounts" validate:"dive"`
	Config   *dto.UpdateAccountingConfigRequest `yaml:"config"`
}

type Member struct {
	User string            `yaml:"user" validate:"required"`
	Role domain.TenantRole `yaml:"role" validate:"required,oneof=ADMIN ACCOUNTANT VIEWER"`
}

// Summary counts what Apply changed.
type Summary struct {
	Tenants         int
	AccountsCreated int
	AccountsSkipped int
	ConfigsApplied  int
}

// MemberSetter receives each tenant's roster.
type MemberSetter interface {
	SetMembers(tenantID string, members []domain.TenantMember)
}

var validate = validator.New()

// Parse decodes and validates a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %v: %w", err, apperrors.ErrValidation)
	}
	for _, t := range f.Tenants {
		if t.admin() == "" {
			return nil, fmt.Errorf("tenant %q has no ADMIN member: %w", t.ID, apperrors.ErrValidation)
		}
	}
	return &f, nil
}

// LoadFile reads and parses the seed file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

func (t Tenant) admin() string {
	for _, m := range t.Members {
		if m.Role == domain.RoleAdmin {
			return m.User
		}
	}
	return ""
}

func (t Tenant) roster() []domain.TenantMember {
	out := make([]domain.TenantMember, len(t.Members))
	for i, m := range t.Members {
		out[i] = domain.TenantMember{TenantID: t.ID, UserID: m.User, Role: m.Role}
	}
	return out
}

// Apply installs every tenant's roster, then creates its accounts and configuration
// acting as the tenant's first admin. Accounts that already exist are skipped, so
// applying the same file twice is harmless.
func Apply(ctx context.Context, f *File, roster MemberSetter, svc *portssvc.ServiceContainer) (Summary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	var sum Summary

	for _, t := range f.Tenants {
		roster.SetMembers(t.ID, t.roster())
		actor := t.admin()

		for _, req := range t.Accounts {
			_, err := svc.Account.CreateAccount(ctx, t.ID, req, actor)
			switch {
			case err == nil:
				sum.AccountsCreated++
			case errors.Is(err, apperrors.ErrDuplicate):
				sum.AccountsSkipped++
			default:
				return sum, fmt.Errorf("tenant %s: account %s: %w", t.ID, req.Code, err)
			}
		}

		if t.Config != nil {
			if _, err := svc.Config.UpdateConfig(ctx, t.ID, t.Config.ToDomain(t.ID), 0, actor); err != nil {
				return sum, fmt.Errorf("tenant %s: accounting config: %w", t.ID, err)
			}
			sum.ConfigsApplied++
		}

		sum.Tenants++
		logger.Info("Tenant seeded",
			slog.String("tenant_id", t.ID),
			slog.Int("members", len(t.Members)),
			slog.Int("accounts", len(t.Accounts)))
	}
	return sum, nil
}
