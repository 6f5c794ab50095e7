package models

import "time"

// AccountingConfig is the single accounting_configs row of a tenant. Empty slots are stored as NULL.
type AccountingConfig struct {
	TenantID      string    `db:"tenant_id"`
	Enabled       bool      `db:"enabled"`
	Suppliers     *string   `db:"suppliers_account"`
	Clients       *string   `db:"clients_account"`
	Bank          *string   `db:"bank_account"`
	Cash          *string   `db:"cash_account"`
	VATDeductible *string   `db:"vat_deductible_account"`
	VATCollected  *string   `db:"vat_collected_account"`
	Purchases     *string   `db:"purchases_account"`
	Sales         *string   `db:"sales_account"`
	Version       int64     `db:"version"`
	UpdatedAt     time.Time `db:"updated_at"`
	UpdatedBy     string    `db:"updated_by"`
}
