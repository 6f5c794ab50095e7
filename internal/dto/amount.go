package dto

import "github.com/SscSPs/erp_ledger/internal/utils"

// Amount carries an exact minor-unit integer next to its decimal rendering.
type Amount struct {
	Minor int64  `json:"minor"`
	Value string `json:"value"`
}

// NewAmount formats minor units with the configured currency exponent.
func NewAmount(minor int64, exponent int) Amount {
	return Amount{Minor: minor, Value: utils.FormatMinorUnits(minor, exponent)}
}
