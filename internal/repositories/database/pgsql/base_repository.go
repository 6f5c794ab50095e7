package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// entryNumberConstraint guards the gapless per-tenant entry sequence.
const entryNumberConstraint = "journal_entries_tenant_number_key"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// inTx runs fn inside a transaction, committing only when fn succeeds.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// uniqueConstraint returns the violated constraint name when err is a unique violation.
func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// entryInsertError classifies a failed journal_entries insert.
// A lost numbering race is a conflict; a repeated origin document or reversal is a duplicate.
func entryInsertError(err error, entryID string, number int64) error {
	constraint, ok := uniqueConstraint(err)
	if !ok {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	if constraint == entryNumberConstraint {
		return fmt.Errorf("entry number %d: %w", number, apperrors.ErrConflict)
	}
	return fmt.Errorf("entry %s (%s): %w", entryID, constraint, apperrors.ErrDuplicate)
}
