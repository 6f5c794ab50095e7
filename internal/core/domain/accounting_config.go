package domain

import "time"

// ConfigSlot names one of the logical roles an account can play for entry generation.
type ConfigSlot string

const (
	SlotSuppliers     ConfigSlot = "suppliers"
	SlotClients       ConfigSlot = "clients"
	SlotBank          ConfigSlot = "bank"
	SlotCash          ConfigSlot = "cash"
	SlotVATDeductible ConfigSlot = "vat_deductible"
	SlotVATCollected  ConfigSlot = "vat_collected"
	SlotPurchases     ConfigSlot = "purchases"
	SlotSales         ConfigSlot = "sales"
)

// AllConfigSlots lists every slot in a stable order.
var AllConfigSlots = []ConfigSlot{
	SlotSuppliers,
	SlotClients,
	SlotBank,
	SlotCash,
	SlotVATDeductible,
	SlotVATCollected,
	SlotPurchases,
	SlotSales,
}

// AccountingConfig maps logical roles to account codes for one tenant.
type AccountingConfig struct {
	TenantID      string    `json:"tenantID"`
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
	UpdatedAt     time.Time `json:"updatedAt"`
	UpdatedBy     string    `json:"updatedBy"`
}

// DefaultAccountingConfig is what a tenant reads before any configuration was stored.
func DefaultAccountingConfig(tenantID string) AccountingConfig {
	return AccountingConfig{TenantID: tenantID}
}

// Slot returns the account code held by the given slot.
func (c AccountingConfig) Slot(slot ConfigSlot) string {
	switch slot {
	case SlotSuppliers:
		return c.Suppliers
	case SlotClients:
		return c.Clients
	case SlotBank:
		return c.Bank
	case SlotCash:
		return c.Cash
	case SlotVATDeductible:
		return c.VATDeductible
	case SlotVATCollected:
		return c.VATCollected
	case SlotPurchases:
		return c.Purchases
	case SlotSales:
		return c.Sales
	}
	return ""
}
