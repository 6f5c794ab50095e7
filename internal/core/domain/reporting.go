package domain

import "time"

// TrialBalanceRow holds one account's movements and final balance.
type TrialBalanceRow struct {
	AccountCode    string      `json:"accountCode"`
	AccountLabel   string      `json:"accountLabel"`
	Class          int         `json:"class"`
	Kind           AccountKind `json:"kind"`
	MovementDebit  int64       `json:"movementDebit"`
	MovementCredit int64       `json:"movementCredit"`
	BalanceDebit   int64       `json:"balanceDebit"`
	BalanceCredit  int64       `json:"balanceCredit"`
}

// ClassSubtotal aggregates the rows of one account class.
type ClassSubtotal struct {
	Class          int    `json:"class"`
	Name           string `json:"name"`
	MovementDebit  int64  `json:"movementDebit"`
	MovementCredit int64  `json:"movementCredit"`
	BalanceDebit   int64  `json:"balanceDebit"`
	BalanceCredit  int64  `json:"balanceCredit"`
}

// TrialBalance is the per-account and per-class balance as of a date.
type TrialBalance struct {
	TenantID    string            `json:"tenantID"`
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	Classes     []ClassSubtotal   `json:"classes"`
	TotalDebit  int64             `json:"totalDebit"`
	TotalCredit int64             `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}
