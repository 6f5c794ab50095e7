package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConfigRepository struct {
	BaseRepository
}

func newPgxConfigRepository(pool *pgxpool.Pool) *PgxConfigRepository {
	return &PgxConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConfigRepositoryFacade = (*PgxConfigRepository)(nil)

func (r *PgxConfigRepository) GetConfig(ctx context.Context, tenantID string) (*domain.AccountingConfig, error) {
	query := `
		SELECT tenant_id, enabled, suppliers_account, clients_account, bank_account, cash_account,
			vat_deductible_account, vat_collected_account, purchases_account, sales_account,
			version, updated_at, updated_by
		FROM accounting_configs WHERE tenant_id = $1;`

	var m models.AccountingConfig
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(
		&m.TenantID, &m.Enabled, &m.Suppliers, &m.Clients, &m.Bank, &m.Cash,
		&m.VATDeductible, &m.VATCollected, &m.Purchases, &m.Sales,
		&m.Version, &m.UpdatedAt, &m.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get accounting config: %w", err)
	}
	cfg := mapping.ToDomainAccountingConfig(m)
	return &cfg, nil
}

// PutConfig upserts the tenant's single configuration row.
func (r *PgxConfigRepository) PutConfig(ctx context.Context, cfg domain.AccountingConfig) error {
	m := mapping.ToModelAccountingConfig(cfg)
	query := `
		INSERT INTO accounting_configs (
			tenant_id, enabled, suppliers_account, clients_account, bank_account, cash_account,
			vat_deductible_account, vat_collected_account, purchases_account, sales_account,
			version, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (tenant_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			suppliers_account = EXCLUDED.suppliers_account,
			clients_account = EXCLUDED.clients_account,
			bank_account = EXCLUDED.bank_account,
			cash_account = EXCLUDED.cash_account,
			vat_deductible_account = EXCLUDED.vat_deductible_account,
			vat_collected_account = EXCLUDED.vat_collected_account,
			purchases_account = EXCLUDED.purchases_account,
			sales_account = EXCLUDED.sales_account,
			version = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by;`

	_, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.Enabled, m.Suppliers, m.Clients, m.Bank, m.Cash,
		m.VATDeductible, m.VATCollected, m.Purchases, m.Sales,
		m.Version, m.UpdatedAt, m.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to store accounting config: %w", err)
	}
	return nil
}
