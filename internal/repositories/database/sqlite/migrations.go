package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		if err := migrateV1(ctx, tx); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return tx.Commit()
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			tenant_id       TEXT NOT NULL,
			code            TEXT NOT NULL,
			label           TEXT NOT NULL,
			class           INTEGER NOT NULL CHECK (class BETWEEN 1 AND 7),
			kind            TEXT NOT NULL CHECK (kind IN ('ASSET','LIABILITY','EXPENSE','REVENUE','TREASURY')),
			is_active       INTEGER NOT NULL DEFAULT 1,
			parent_code     TEXT,
			level           INTEGER NOT NULL CHECK (level >= 1),
			created_at      TEXT NOT NULL,
			created_by      TEXT NOT NULL,
			last_updated_at TEXT NOT NULL,
			last_updated_by TEXT NOT NULL,
			PRIMARY KEY (tenant_id, code)
		)`,

		`CREATE TABLE IF NOT EXISTS accounting_configs (
			tenant_id              TEXT PRIMARY KEY,
			enabled                INTEGER NOT NULL DEFAULT 0,
			suppliers_account      TEXT,
			clients_account        TEXT,
			bank_account           TEXT,
			cash_account           TEXT,
			vat_deductible_account TEXT,
			vat_collected_account  TEXT,
			purchases_account      TEXT,
			sales_account          TEXT,
			version                INTEGER NOT NULL,
			updated_at             TEXT NOT NULL,
			updated_by             TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS journal_entries (
			entry_id             TEXT PRIMARY KEY,
			tenant_id            TEXT NOT NULL,
			entry_number         INTEGER NOT NULL,
			entry_date           TEXT NOT NULL,
			journal_code         TEXT NOT NULL,
			label                TEXT NOT NULL,
			origin               TEXT NOT NULL CHECK (origin IN ('AUTOMATIC','MANUAL')),
			origin_document_type TEXT,
			origin_document_ref  TEXT,
			reverses_entry_id    TEXT REFERENCES journal_entries(entry_id),
			status               TEXT NOT NULL,
			posted_at            TEXT NOT NULL,
			posted_by            TEXT NOT NULL,
			finalized            INTEGER NOT NULL DEFAULT 0,
			UNIQUE (tenant_id, entry_number)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_origin
			ON journal_entries(tenant_id, origin_document_type, origin_document_ref)
			WHERE origin = 'AUTOMATIC' AND origin_document_ref IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_reversal
			ON journal_entries(reverses_entry_id) WHERE reverses_entry_id IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_entries_date ON journal_entries(tenant_id, entry_date, entry_number)`,

		`CREATE TABLE IF NOT EXISTS journal_lines (
			entry_id     TEXT NOT NULL REFERENCES journal_entries(entry_id),
			line_no      INTEGER NOT NULL,
			tenant_id    TEXT NOT NULL,
			account_code TEXT NOT NULL,
			label        TEXT NOT NULL DEFAULT '',
			debit        INTEGER NOT NULL CHECK (debit >= 0),
			credit       INTEGER NOT NULL CHECK (credit >= 0),
			PRIMARY KEY (entry_id, line_no),
			FOREIGN KEY (tenant_id, account_code) REFERENCES accounts(tenant_id, code),
			CHECK ((debit > 0) <> (credit > 0))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_account ON journal_lines(tenant_id, account_code)`,

		// Trigger: refuse to finalize an entry whose lines do not balance
		`CREATE TRIGGER IF NOT EXISTS trg_check_balance
		BEFORE UPDATE OF finalized ON journal_entries
		WHEN NEW.finalized = 1
		BEGIN
			SELECT CASE
				WHEN (SELECT COUNT(*) FROM journal_lines WHERE entry_id = NEW.entry_id) < 2
					OR (SELECT SUM(debit) - SUM(credit) FROM journal_lines WHERE entry_id = NEW.entry_id) != 0
				THEN RAISE(ABORT, 'journal entry lines do not balance')
			END;
		END`,

		`CREATE TRIGGER IF NOT EXISTS trg_immutable_entries_update
		BEFORE UPDATE ON journal_entries
		WHEN OLD.finalized = 1
		BEGIN
			SELECT RAISE(ABORT, 'cannot modify a posted journal entry');
		END`,

		`CREATE TRIGGER IF NOT EXISTS trg_immutable_entries_delete
		BEFORE DELETE ON journal_entries
		BEGIN
			SELECT RAISE(ABORT, 'cannot delete a journal entry');
		END`,

		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_insert
		BEFORE INSERT ON journal_lines
		WHEN (SELECT finalized FROM journal_entries WHERE entry_id = NEW.entry_id) = 1
		BEGIN
			SELECT RAISE(ABORT, 'cannot add lines to a posted journal entry');
		END`,

		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_update
		BEFORE UPDATE ON journal_lines
		BEGIN
			SELECT RAISE(ABORT, 'cannot modify lines of a journal entry');
		END`,

		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_delete
		BEFORE DELETE ON journal_lines
		BEGIN
			SELECT RAISE(ABORT, 'cannot remove lines of a journal entry');
		END`,

		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
