package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

const entryColumns = `entry_id, tenant_id, entry_number, entry_date, journal_code, label, origin,
	origin_document_type, origin_document_ref, reverses_entry_id, status, posted_at, posted_by`

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		m                       models.JournalEntry
		docType, docRef, revers sql.NullString
		entryDate, postedAt     string
	)
	err := row.Scan(&m.EntryID, &m.TenantID, &m.EntryNumber, &entryDate, &m.JournalCode, &m.Label, &m.Origin,
		&docType, &docRef, &revers, &m.Status, &postedAt, &m.PostedBy)
	if err != nil {
		return m, err
	}
	if m.EntryDate, err = time.Parse(domain.DateLayout, entryDate); err != nil {
		return m, fmt.Errorf("entry %s: parse entry date %q: %w", m.EntryID, entryDate, err)
	}
	if m.PostedAt, err = parseTime(postedAt); err != nil {
		return m, fmt.Errorf("entry %s: %w", m.EntryID, err)
	}
	m.OriginDocumentType = stringPtr(docType)
	m.OriginDocumentRef = stringPtr(docRef)
	m.ReversesEntryID = stringPtr(revers)
	return m, nil
}

// AppendEntry inserts the header unfinalized, adds its lines, then finalizes it.
// The finalize trigger re-checks the balance and seals the entry.
func (s *Store) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	header, lines := mapping.ToModelJournalEntry(entry)

	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO journal_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		header.EntryID, header.TenantID, header.EntryNumber, header.EntryDate.Format(domain.DateLayout),
		header.JournalCode, header.Label, header.Origin,
		nullString(header.OriginDocumentType), nullString(header.OriginDocumentRef), nullString(header.ReversesEntryID),
		header.Status, formatTime(header.PostedAt), header.PostedBy)
	if err != nil {
		if msg, ok := uniqueViolation(err); ok {
			if containsAll(msg, "journal_entries.tenant_id", "journal_entries.entry_number") {
				return fmt.Errorf("entry number %d: %w", header.EntryNumber, apperrors.ErrConflict)
			}
			return fmt.Errorf("entry %s: %w", header.EntryID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("insert journal entry: %w", err)
	}

	for _, l := range lines {
		_, err := tx.ExecContext(ctx, `INSERT INTO journal_lines
			(entry_id, line_no, tenant_id, account_code, label, debit, credit)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.EntryID, l.LineNo, header.TenantID, l.AccountCode, l.Label, l.Debit, l.Credit)
		if err != nil {
			return fmt.Errorf("insert journal line %d: %w", l.LineNo, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE journal_entries SET finalized = 1 WHERE entry_id = ?`, header.EntryID); err != nil {
		return fmt.Errorf("finalize journal entry: %w", err)
	}

	return tx.Commit()
}

func (s *Store) findOne(ctx context.Context, where string, args ...any) (*domain.JournalEntry, error) {
	m, err := scanEntry(s.reader.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM journal_entries WHERE finalized = 1 AND `+where+` LIMIT 1`, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find journal entry: %w", err)
	}
	entries, err := s.attachLines(ctx, []models.JournalEntry{m})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (s *Store) FindEntryByID(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return s.findOne(ctx, `tenant_id = ? AND entry_id = ?`, tenantID, entryID)
}

func (s *Store) FindEntryByOrigin(ctx context.Context, tenantID string, documentType string, documentRef string) (*domain.JournalEntry, error) {
	return s.findOne(ctx, `tenant_id = ? AND origin_document_type = ? AND origin_document_ref = ?`, tenantID, documentType, documentRef)
}

func (s *Store) FindReversalOf(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return s.findOne(ctx, `tenant_id = ? AND reverses_entry_id = ?`, tenantID, entryID)
}

// QueryEntries relies on DateLayout sorting lexically in calendar order.
func (s *Store) QueryEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	conds := []string{"finalized = 1", "tenant_id = ?"}
	args := []any{tenantID}

	if filter.DateFrom != nil {
		conds = append(conds, "entry_date >= ?")
		args = append(args, filter.DateFrom.Format(domain.DateLayout))
	}
	if filter.DateTo != nil {
		conds = append(conds, "entry_date <= ?")
		args = append(args, filter.DateTo.Format(domain.DateLayout))
	}
	if filter.JournalCode != "" {
		conds = append(conds, "journal_code = ?")
		args = append(args, filter.JournalCode)
	}
	if filter.Origin != "" {
		conds = append(conds, "origin = ?")
		args = append(args, string(filter.Origin))
	}
	if filter.After != nil {
		conds = append(conds, "(entry_date > ? OR (entry_date = ? AND entry_number > ?))")
		d := filter.After.Date.Format(domain.DateLayout)
		args = append(args, d, d, filter.After.Number)
	}
	if len(filter.AccountCodes) > 0 {
		codes, err := jsonList(filter.AccountCodes)
		if err != nil {
			return nil, err
		}
		conds = append(conds, `EXISTS (SELECT 1 FROM journal_lines l
			WHERE l.entry_id = journal_entries.entry_id AND l.account_code IN (SELECT value FROM json_each(?)))`)
		args = append(args, codes)
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY entry_date, entry_number`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var headers []models.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return s.attachLines(ctx, headers)
}

func (s *Store) attachLines(ctx context.Context, headers []models.JournalEntry) ([]domain.JournalEntry, error) {
	out := make([]domain.JournalEntry, 0, len(headers))
	if len(headers) == 0 {
		return out, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	idList, err := jsonList(ids)
	if err != nil {
		return nil, err
	}

	// A single JSON array parameter keeps the statement under SQLite's host parameter limit.
	rows, err := s.reader.QueryContext(ctx, `SELECT entry_id, line_no, account_code, label, debit, credit
		FROM journal_lines WHERE entry_id IN (SELECT value FROM json_each(?)) ORDER BY entry_id, line_no`, idList)
	if err != nil {
		return nil, fmt.Errorf("query journal lines: %w", err)
	}
	defer rows.Close()

	byEntry := make(map[string][]models.JournalLine, len(headers))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountCode, &l.Label, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("scan journal line: %w", err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, h := range headers {
		out = append(out, mapping.ToDomainJournalEntry(h, byEntry[h.EntryID]))
	}
	return out, nil
}

func jsonList(values []string) (string, error) {
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode list parameter: %w", err)
	}
	return string(raw), nil
}

func (s *Store) NextEntryNumber(ctx context.Context, tenantID string) (int64, error) {
	var next int64
	err := s.reader.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(entry_number), 0) + 1 FROM journal_entries WHERE tenant_id = ?`, tenantID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next entry number: %w", err)
	}
	return next, nil
}

func (s *Store) IsAccountReferenced(ctx context.Context, tenantID string, accountCode string) (bool, error) {
	var referenced int
	err := s.reader.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM journal_lines WHERE tenant_id = ? AND account_code = ?)`, tenantID, accountCode,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("check account references: %w", err)
	}
	return referenced == 1, nil
}
