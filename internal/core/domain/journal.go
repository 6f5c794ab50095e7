package domain

import (
	"math"
	"time"
)

// EntryOrigin tells whether an entry was generated from a business event or keyed by hand.
type EntryOrigin string

const (
	OriginAutomatic EntryOrigin = "AUTOMATIC"
	OriginManual    EntryOrigin = "MANUAL"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// Journal codes used by the generation rules. Manual entries may use any code.
const (
	JournalSales         = "Sales"
	JournalPurchases     = "Purchases"
	JournalBank          = "Bank"
	JournalCash          = "Cash"
	JournalMiscellaneous = "Miscellaneous"
)

// JournalEntryLine is one debit or credit movement on a single account.
type JournalEntryLine struct {
	LineNo      int    `json:"lineNo"`
	AccountCode string `json:"accountCode"`
	Label       string `json:"label"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
}

// Net is the line's debit minus its credit.
func (l JournalEntryLine) Net() int64 {
	return l.Debit - l.Credit
}

// HasSingleSide reports whether exactly one side is strictly positive and the other is zero.
func (l JournalEntryLine) HasSingleSide() bool {
	if l.Debit < 0 || l.Credit < 0 {
		return false
	}
	return (l.Debit > 0) != (l.Credit > 0)
}

// JournalEntry is a dated set of lines whose debits equal its credits once posted.
type JournalEntry struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenantID"`
	Number             int64              `json:"number"`
	Date               time.Time          `json:"date"`
	JournalCode        string             `json:"journalCode"`
	Label              string             `json:"label"`
	Origin             EntryOrigin        `json:"origin"`
	OriginDocumentType string             `json:"originDocumentType,omitempty"`
	OriginDocumentRef  string             `json:"originDocumentRef,omitempty"`
	ReversesEntryID    string             `json:"reversesEntryID,omitempty"`
	Lines              []JournalEntryLine `json:"lines"`
	Status             EntryStatus        `json:"status"`
	PostedAt           time.Time          `json:"postedAt"`
	PostedBy           string             `json:"postedBy"`
}

// TotalDebit sums the debit column. Only meaningful on entries whose totals were checked.
func (e JournalEntry) TotalDebit() int64 {
	var total int64
	for _, l := range e.Lines {
		total += l.Debit
	}
	return total
}

// TotalCredit sums the credit column. Only meaningful on entries whose totals were checked.
func (e JournalEntry) TotalCredit() int64 {
	var total int64
	for _, l := range e.Lines {
		total += l.Credit
	}
	return total
}

// CheckedTotals sums both columns, returning the index of the first line whose amount
// takes a total out of range, or -1 when both totals are exact.
func (e JournalEntry) CheckedTotals() (debit int64, credit int64, overflowAt int) {
	for i, l := range e.Lines {
		var ok bool
		if debit, ok = AddAmount(debit, l.Debit); !ok {
			return 0, 0, i
		}
		if credit, ok = AddAmount(credit, l.Credit); !ok {
			return 0, 0, i
		}
	}
	return debit, credit, -1
}

// IsBalanced reports whether debits equal credits and the entry moves a non-zero amount.
func (e JournalEntry) IsBalanced() bool {
	debit, credit, overflowAt := e.CheckedTotals()
	return overflowAt < 0 && debit == credit && debit > 0
}

// HasOriginDocument reports whether the entry can be traced back to a source document.
func (e JournalEntry) HasOriginDocument() bool {
	return e.OriginDocumentType != "" && e.OriginDocumentRef != ""
}

// Clone returns a deep copy so callers cannot alias a stored entry's lines.
func (e JournalEntry) Clone() JournalEntry {
	c := e
	c.Lines = append([]JournalEntryLine(nil), e.Lines...)
	return c
}

// EntryCursor marks a position in (date, number) order.
type EntryCursor struct {
	Date   time.Time
	Number int64
}

// EntryFilter narrows a query over posted entries. Zero values mean "no constraint".
type EntryFilter struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	AccountCodes []string
	JournalCode  string
	Origin       EntryOrigin
	After        *EntryCursor
	Limit        int
}

// Matches reports whether e satisfies every constraint except Limit and AccountCodes.
func (f EntryFilter) Matches(e JournalEntry) bool {
	if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.Date.After(*f.DateTo) {
		return false
	}
	if f.JournalCode != "" && e.JournalCode != f.JournalCode {
		return false
	}
	if f.Origin != "" && e.Origin != f.Origin {
		return false
	}
	if f.After != nil {
		if e.Date.Before(f.After.Date) {
			return false
		}
		if e.Date.Equal(f.After.Date) && e.Number <= f.After.Number {
			return false
		}
	}
	return true
}

// TouchesAny reports whether any line of e references one of codes. An empty set matches everything.
func (e JournalEntry) TouchesAny(codes map[string]struct{}) bool {
	if len(codes) == 0 {
		return true
	}
	for _, l := range e.Lines {
		if _, ok := codes[l.AccountCode]; ok {
			return true
		}
	}
	return false
}

// LessByDateNumber orders entries by (date, number).
func LessByDateNumber(a, b JournalEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Number < b.Number
}

// NormalizeDate drops the time of day, keeping the calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// AddAmount adds two minor-unit amounts. ok is false when the exact sum falls outside
// [-math.MaxInt64, math.MaxInt64]; MinInt64 is excluded so every amount can be negated.
func AddAmount(a, b int64) (sum int64, ok bool) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) || sum == math.MinInt64 {
		return 0, false
	}
	return sum, true
}
