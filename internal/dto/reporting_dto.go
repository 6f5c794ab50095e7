package dto

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode    string `json:"accountCode"`
	AccountLabel   string `json:"accountLabel"`
	Class          int    `json:"class"`
	MovementDebit  Amount `json:"movementDebit"`
	MovementCredit Amount `json:"movementCredit"`
	BalanceDebit   Amount `json:"balanceDebit"`
	BalanceCredit  Amount `json:"balanceCredit"`
}

// ClassSubtotalResponse represents one class subtotal
type ClassSubtotalResponse struct {
	Class         int    `json:"class"`
	Name          string `json:"name"`
	BalanceDebit  Amount `json:"balanceDebit"`
	BalanceCredit Amount `json:"balanceCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf     string                    `json:"asOf"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Classes  []ClassSubtotalResponse   `json:"classes"`
	Balanced bool                      `json:"balanced"`
	Totals   struct {
		Debit  Amount `json:"debit"`
		Credit Amount `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts domain trial balance to response DTO
func ToTrialBalanceResponse(tb *domain.TrialBalance, exponent int) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:     tb.AsOf.Format(domain.DateLayout),
		Rows:     make([]TrialBalanceRowResponse, len(tb.Rows)),
		Classes:  make([]ClassSubtotalResponse, len(tb.Classes)),
		Balanced: tb.Balanced,
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode:    row.AccountCode,
			AccountLabel:   row.AccountLabel,
			Class:          row.Class,
			MovementDebit:  NewAmount(row.MovementDebit, exponent),
			MovementCredit: NewAmount(row.MovementCredit, exponent),
			BalanceDebit:   NewAmount(row.BalanceDebit, exponent),
			BalanceCredit:  NewAmount(row.BalanceCredit, exponent),
		}
	}
	for i, cls := range tb.Classes {
		response.Classes[i] = ClassSubtotalResponse{
			Class:         cls.Class,
			Name:          cls.Name,
			BalanceDebit:  NewAmount(cls.BalanceDebit, exponent),
			BalanceCredit: NewAmount(cls.BalanceCredit, exponent),
		}
	}
	response.Totals.Debit = NewAmount(tb.TotalDebit, exponent)
	response.Totals.Credit = NewAmount(tb.TotalCredit, exponent)
	return response
}
