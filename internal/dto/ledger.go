package dto

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// LedgerMovementResponse is one line of the general ledger.
type LedgerMovementResponse struct {
	Date          string `json:"date"`
	EntryID       string `json:"entryID"`
	EntryNumber   int64  `json:"entryNumber"`
	AccountCode   string `json:"accountCode"`
	JournalCode   string `json:"journalCode"`
	Label         string `json:"label"`
	Debit         Amount `json:"debit"`
	Credit        Amount `json:"credit"`
	RunningDebit  Amount `json:"runningDebit"`
	RunningCredit Amount `json:"runningCredit"`
}

// LedgerViewResponse is the general ledger of one account over a period.
type LedgerViewResponse struct {
	AccountCode   string                   `json:"accountCode"`
	AccountLabel  string                   `json:"accountLabel"`
	NormalSide    domain.Side              `json:"normalSide"`
	From          string                   `json:"from"`
	To            string                   `json:"to"`
	OpeningDebit  Amount                   `json:"openingDebit"`
	OpeningCredit Amount                   `json:"openingCredit"`
	Movements     []LedgerMovementResponse `json:"movements"`
	ClosingDebit  Amount                   `json:"closingDebit"`
	ClosingCredit Amount                   `json:"closingCredit"`
	NormalBalance Amount                   `json:"normalBalance"`
}

// ToLedgerViewResponse converts a domain ledger view.
func ToLedgerViewResponse(v *domain.LedgerView, exponent int) LedgerViewResponse {
	movements := make([]LedgerMovementResponse, len(v.Movements))
	for i, m := range v.Movements {
		movements[i] = LedgerMovementResponse{
			Date:          m.Date.Format(domain.DateLayout),
			EntryID:       m.EntryID,
			EntryNumber:   m.EntryNumber,
			AccountCode:   m.AccountCode,
			JournalCode:   m.JournalCode,
			Label:         m.Label,
			Debit:         NewAmount(m.Debit, exponent),
			Credit:        NewAmount(m.Credit, exponent),
			RunningDebit:  NewAmount(m.RunningDebit, exponent),
			RunningCredit: NewAmount(m.RunningCredit, exponent),
		}
	}
	return LedgerViewResponse{
		AccountCode:   v.Account.Code,
		AccountLabel:  v.Account.Label,
		NormalSide:    v.Account.NormalSide(),
		From:          v.From.Format(domain.DateLayout),
		To:            v.To.Format(domain.DateLayout),
		OpeningDebit:  NewAmount(v.OpeningDebit, exponent),
		OpeningCredit: NewAmount(v.OpeningCredit, exponent),
		Movements:     movements,
		ClosingDebit:  NewAmount(v.ClosingDebit, exponent),
		ClosingCredit: NewAmount(v.ClosingCredit, exponent),
		NormalBalance: NewAmount(v.NormalBalance, exponent),
	}
}
