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

const accountColumns = `tenant_id, code, label, class, kind, is_active, parent_code, level,
	created_at, created_by, last_updated_at, last_updated_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		m                    models.Account
		active               int
		parent               sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&m.TenantID, &m.Code, &m.Label, &m.Class, &m.Kind, &active, &parent, &m.Level,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	if err != nil {
		return m, err
	}
	m.IsActive = active == 1
	m.ParentCode = stringPtr(parent)
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (s *Store) FindAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	m, err := scanAccount(s.reader.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE tenant_id = ? AND code = ?`, tenantID, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find account %s: %w", code, err)
	}
	a := mapping.ToDomainAccount(m)
	return &a, nil
}

func (s *Store) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE tenant_id = ? ORDER BY code`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := s.writer.ExecContext(ctx, `INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TenantID, m.Code, m.Label, m.Class, m.Kind, boolInt(m.IsActive), nullString(m.ParentCode), m.Level,
		formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("account %s: %w", m.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	res, err := s.writer.ExecContext(ctx, `UPDATE accounts
		SET label = ?, is_active = ?, last_updated_at = ?, last_updated_by = ?
		WHERE tenant_id = ? AND code = ?`,
		account.Label, boolInt(account.Active), formatTime(account.LastUpdatedAt), account.LastUpdatedBy,
		account.TenantID, account.Code)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
