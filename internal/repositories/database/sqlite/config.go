package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

func (s *Store) GetConfig(ctx context.Context, tenantID string) (*domain.AccountingConfig, error) {
	var (
		m         models.AccountingConfig
		enabled   int
		slots     [8]sql.NullString
		updatedAt string
	)
	err := s.reader.QueryRowContext(ctx, `SELECT tenant_id, enabled,
			suppliers_account, clients_account, bank_account, cash_account,
			vat_deductible_account, vat_collected_account, purchases_account, sales_account,
			version, updated_at, updated_by
		FROM accounting_configs WHERE tenant_id = ?`, tenantID).Scan(
		&m.TenantID, &enabled,
		&slots[0], &slots[1], &slots[2], &slots[3], &slots[4], &slots[5], &slots[6], &slots[7],
		&m.Version, &updatedAt, &m.UpdatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get accounting config: %w", err)
	}
	m.Enabled = enabled == 1
	m.Suppliers = stringPtr(slots[0])
	m.Clients = stringPtr(slots[1])
	m.Bank = stringPtr(slots[2])
	m.Cash = stringPtr(slots[3])
	m.VATDeductible = stringPtr(slots[4])
	m.VATCollected = stringPtr(slots[5])
	m.Purchases = stringPtr(slots[6])
	m.Sales = stringPtr(slots[7])
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("get accounting config: %w", err)
	}

	cfg := mapping.ToDomainAccountingConfig(m)
	return &cfg, nil
}

func (s *Store) PutConfig(ctx context.Context, cfg domain.AccountingConfig) error {
	m := mapping.ToModelAccountingConfig(cfg)
	_, err := s.writer.ExecContext(ctx, `INSERT INTO accounting_configs (tenant_id, enabled,
			suppliers_account, clients_account, bank_account, cash_account,
			vat_deductible_account, vat_collected_account, purchases_account, sales_account,
			version, updated_at, updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id) DO UPDATE SET
			enabled = excluded.enabled,
			suppliers_account = excluded.suppliers_account,
			clients_account = excluded.clients_account,
			bank_account = excluded.bank_account,
			cash_account = excluded.cash_account,
			vat_deductible_account = excluded.vat_deductible_account,
			vat_collected_account = excluded.vat_collected_account,
			purchases_account = excluded.purchases_account,
			sales_account = excluded.sales_account,
			version = excluded.version,
			updated_at = excluded.updated_at,
			updated_by = excluded.updated_by`,
		m.TenantID, boolInt(m.Enabled),
		nullString(m.Suppliers), nullString(m.Clients), nullString(m.Bank), nullString(m.Cash),
		nullString(m.VATDeductible), nullString(m.VATCollected), nullString(m.Purchases), nullString(m.Sales),
		m.Version, formatTime(m.UpdatedAt), m.UpdatedBy)
	if err != nil {
		return fmt.Errorf("put accounting config: %w", err)
	}
	return nil
}
