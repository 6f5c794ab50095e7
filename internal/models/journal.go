package models

import "time"

// JournalEntry is a row of the journal_entries table. Rows are insert-only.
type JournalEntry struct {
	EntryID            string    `db:"entry_id"`
	TenantID           string    `db:"tenant_id"`
	EntryNumber        int64     `db:"entry_number"`
	EntryDate          time.Time `db:"entry_date"`
	JournalCode        string    `db:"journal_code"`
	Label              string    `db:"label"`
	Origin             string    `db:"origin"`
	OriginDocumentType *string   `db:"origin_document_type"`
	OriginDocumentRef  *string   `db:"origin_document_ref"`
	ReversesEntryID    *string   `db:"reverses_entry_id"`
	Status             string    `db:"status"`
	PostedAt           time.Time `db:"posted_at"`
	PostedBy           string    `db:"posted_by"`
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	EntryID     string `db:"entry_id"`
	LineNo      int    `db:"line_no"`
	AccountCode string `db:"account_code"`
	Label       string `db:"label"`
	Debit       int64  `db:"debit"`
	Credit      int64  `db:"credit"`
}
