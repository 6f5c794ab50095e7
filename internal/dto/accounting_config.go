package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// UpdateAccountingConfigRequest replaces the whole configuration of a tenant.
type UpdateAccountingConfigRequest struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	Suppliers       string `json:"suppliers" yaml:"suppliers" validate:"omitempty,numeric"`
	Clients         string `json:"clients" yaml:"clients" validate:"omitempty,numeric"`
	Bank            string `json:"bank" yaml:"bank" validate:"omitempty,numeric"`
	Cash            string `json:"cash" yaml:"cash" validate:"omitempty,numeric"`
	VATDeductible   string `json:"vatDeductible" yaml:"vat_deductible" validate:"omitempty,numeric"`
	VATCollected    string `json:"vatCollected" yaml:"vat_collected" validate:"omitempty,numeric"`
	Purchases       string `json:"purchases" yaml:"purchases" validate:"omitempty,numeric"`
	Sales           string `json:"sales" yaml:"sales" validate:"omitempty,numeric"`
	ExpectedVersion int64  `json:"expectedVersion" yaml:"-" binding:"min=0"`
}

// ToDomain builds the configuration record the request describes.
func (r UpdateAccountingConfigRequest) ToDomain(tenantID string) domain.AccountingConfig {
	return domain.AccountingConfig{
		TenantID:      tenantID,
		Enabled:       r.Enabled,
		Suppliers:     r.Suppliers,
		Clients:       r.Clients,
		Bank:          r.Bank,
		Cash:          r.Cash,
		VATDeductible: r.VATDeductible,
		VATCollected:  r.VATCollected,
		Purchases:     r.Purchases,
		Sales:         r.Sales,
	}
}

// AccountingConfigResponse is the configuration as returned to clients.
type AccountingConfigResponse struct {
	Enabled       bool      `json:"enabled"`
	Suppliers     string    `json:"suppliers"`
	Clients       string    `json:"clients"`
	Bank          string    `json:"bank"`
	Cash          string    `json:"cash"`
	VATDeductible string    `json:"vatDeductible"`
	VATCollected  string    `json:"vatCollected"`
	Purchases     string    `json:"purchases"`
	Sales         string    `json:"sales"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
	UpdatedBy     string    `json:"updatedBy,omitempty"`
}

// ToAccountingConfigResponse converts a domain config to its DTO.
func ToAccountingConfigResponse(cfg *domain.AccountingConfig) AccountingConfigResponse {
	return AccountingConfigResponse{
		Enabled:       cfg.Enabled,
		Suppliers:     cfg.Suppliers,
		Clients:       cfg.Clients,
		Bank:          cfg.Bank,
		Cash:          cfg.Cash,
		VATDeductible: cfg.VATDeductible,
		VATCollected:  cfg.VATCollected,
		Purchases:     cfg.Purchases,
		Sales:         cfg.Sales,
		Version:       cfg.Version,
		UpdatedAt:     cfg.UpdatedAt,
		UpdatedBy:     cfg.UpdatedBy,
	}
}
