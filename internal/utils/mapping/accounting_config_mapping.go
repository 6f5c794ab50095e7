package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelAccountingConfig converts a domain AccountingConfig to its row form
func ToModelAccountingConfig(d domain.AccountingConfig) models.AccountingConfig {
	return models.AccountingConfig{
		TenantID:      d.TenantID,
		Enabled:       d.Enabled,
		Suppliers:     nullable(d.Suppliers),
		Clients:       nullable(d.Clients),
		Bank:          nullable(d.Bank),
		Cash:          nullable(d.Cash),
		VATDeductible: nullable(d.VATDeductible),
		VATCollected:  nullable(d.VATCollected),
		Purchases:     nullable(d.Purchases),
		Sales:         nullable(d.Sales),
		Version:       d.Version,
		UpdatedAt:     d.UpdatedAt,
		UpdatedBy:     d.UpdatedBy,
	}
}

// ToDomainAccountingConfig converts a config row to a domain AccountingConfig
func ToDomainAccountingConfig(m models.AccountingConfig) domain.AccountingConfig {
	return domain.AccountingConfig{
		TenantID:      m.TenantID,
		Enabled:       m.Enabled,
		Suppliers:     deref(m.Suppliers),
		Clients:       deref(m.Clients),
		Bank:          deref(m.Bank),
		Cash:          deref(m.Cash),
		VATDeductible: deref(m.VATDeductible),
		VATCollected:  deref(m.VATCollected),
		Purchases:     deref(m.Purchases),
		Sales:         deref(m.Sales),
		Version:       m.Version,
		UpdatedAt:     m.UpdatedAt,
		UpdatedBy:     m.UpdatedBy,
	}
}
