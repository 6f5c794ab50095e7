package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, tenant_id, entry_number, entry_date, journal_code, label, origin,
	origin_document_type, origin_document_ref, reverses_entry_id, status, posted_at, posted_by`

// selectEntryColumns reads UUID columns back as text.
const selectEntryColumns = `entry_id::text, tenant_id, entry_number, entry_date, journal_code, label, origin,
	origin_document_type, origin_document_ref, reverses_entry_id::text, status, posted_at, posted_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for posted journal entries.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID, &m.TenantID, &m.EntryNumber, &m.EntryDate, &m.JournalCode, &m.Label, &m.Origin,
		&m.OriginDocumentType, &m.OriginDocumentRef, &m.ReversesEntryID, &m.Status, &m.PostedAt, &m.PostedBy,
	)
	return m, err
}

// AppendEntry inserts the entry header and all of its lines in one transaction.
func (r *PgxJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	header, lines := mapping.ToModelJournalEntry(entry)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO journal_entries (`+entryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
			header.EntryID, header.TenantID, header.EntryNumber, header.EntryDate, header.JournalCode, header.Label, header.Origin,
			header.OriginDocumentType, header.OriginDocumentRef, header.ReversesEntryID, header.Status, header.PostedAt, header.PostedBy,
		)
		if err != nil {
			return entryInsertError(err, header.EntryID, header.EntryNumber)
		}

		batch := &pgx.Batch{}
		for _, l := range lines {
			batch.Queue(`INSERT INTO journal_lines (entry_id, line_no, tenant_id, account_code, label, debit, credit)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				l.EntryID, l.LineNo, header.TenantID, l.AccountCode, l.Label, l.Debit, l.Credit)
		}
		results := tx.SendBatch(ctx, batch)
		for i := range lines {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert journal line %d: %w", i+1, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close line batch: %w", err)
		}
		return nil
	})
}

func (r *PgxJournalRepository) findOne(ctx context.Context, where string, args ...any) (*domain.JournalEntry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, `SELECT `+selectEntryColumns+` FROM journal_entries WHERE `+where+` LIMIT 1;`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}
	entries, err := r.attachLines(ctx, []models.JournalEntry{m})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, `tenant_id = $1 AND entry_id::text = $2`, tenantID, entryID)
}

func (r *PgxJournalRepository) FindEntryByOrigin(ctx context.Context, tenantID string, documentType string, documentRef string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, `tenant_id = $1 AND origin_document_type = $2 AND origin_document_ref = $3`, tenantID, documentType, documentRef)
}

func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, `tenant_id = $1 AND reverses_entry_id::text = $2`, tenantID, entryID)
}

// QueryEntries builds the WHERE clause from the filter and loads matching entries with their lines.
func (r *PgxJournalRepository) QueryEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	conds := []string{"tenant_id = $1"}
	args := []any{tenantID}
	add := func(cond string, v ...any) {
		for _, a := range v {
			args = append(args, a)
			cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		conds = append(conds, cond)
	}

	if filter.DateFrom != nil {
		add("entry_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("entry_date <= ?", *filter.DateTo)
	}
	if filter.JournalCode != "" {
		add("journal_code = ?", filter.JournalCode)
	}
	if filter.Origin != "" {
		add("origin = ?", string(filter.Origin))
	}
	if filter.After != nil {
		add("(entry_date, entry_number) > (?, ?)", filter.After.Date, filter.After.Number)
	}
	if len(filter.AccountCodes) > 0 {
		add(`EXISTS (SELECT 1 FROM journal_lines l WHERE l.entry_id = journal_entries.entry_id AND l.account_code = ANY(?))`, filter.AccountCodes)
	}

	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY entry_date, entry_number`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var headers []models.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return r.attachLines(ctx, headers)
}

// attachLines loads the lines of every header with a single query.
func (r *PgxJournalRepository) attachLines(ctx context.Context, headers []models.JournalEntry) ([]domain.JournalEntry, error) {
	out := make([]domain.JournalEntry, 0, len(headers))
	if len(headers) == 0 {
		return out, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id::text, line_no, account_code, label, debit, credit
		FROM journal_lines WHERE entry_id::text = ANY($1)
		ORDER BY entry_id, line_no;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	byEntry := make(map[string][]models.JournalLine, len(headers))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountCode, &l.Label, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	for _, h := range headers {
		out = append(out, mapping.ToDomainJournalEntry(h, byEntry[h.EntryID]))
	}
	return out, nil
}

func (r *PgxJournalRepository) NextEntryNumber(ctx context.Context, tenantID string) (int64, error) {
	var next int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(entry_number), 0) + 1 FROM journal_entries WHERE tenant_id = $1;`, tenantID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next entry number: %w", err)
	}
	return next, nil
}

func (r *PgxJournalRepository) IsAccountReferenced(ctx context.Context, tenantID string, accountCode string) (bool, error) {
	var referenced bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM journal_lines WHERE tenant_id = $1 AND account_code = $2);`, tenantID, accountCode,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check account references: %w", err)
	}
	return referenced, nil
}
