package domain

import "time"

// LedgerMovement is one posted line in a ledger view, with the balance after it.
type LedgerMovement struct {
	Date          time.Time `json:"date"`
	EntryID       string    `json:"entryID"`
	EntryNumber   int64     `json:"entryNumber"`
	LineNo        int       `json:"lineNo"`
	AccountCode   string    `json:"accountCode"`
	JournalCode   string    `json:"journalCode"`
	Label         string    `json:"label"`
	Debit         int64     `json:"debit"`
	Credit        int64     `json:"credit"`
	RunningDebit  int64     `json:"runningDebit"`
	RunningCredit int64     `json:"runningCredit"`
}

// LedgerView is the general-ledger projection of an account over a date range.
type LedgerView struct {
	TenantID      string           `json:"tenantID"`
	Account       Account          `json:"account"`
	From          time.Time        `json:"from"`
	To            time.Time        `json:"to"`
	OpeningDebit  int64            `json:"openingDebit"`
	OpeningCredit int64            `json:"openingCredit"`
	Movements     []LedgerMovement `json:"movements"`
	ClosingDebit  int64            `json:"closingDebit"`
	ClosingCredit int64            `json:"closingCredit"`
	// NormalBalance is the closing net expressed on the account's normal side.
	NormalBalance int64 `json:"normalBalance"`
}
