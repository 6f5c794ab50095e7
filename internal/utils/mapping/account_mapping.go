package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		TenantID:    d.TenantID,
		Code:        d.Code,
		Label:       d.Label,
		Class:       d.Class,
		Kind:        string(d.Kind),
		IsActive:    d.Active,
		ParentCode:  nullable(d.ParentCode),
		Level:       d.Level,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		TenantID:    m.TenantID,
		Code:        m.Code,
		Label:       m.Label,
		Class:       m.Class,
		Kind:        domain.AccountKind(m.Kind),
		Active:      m.IsActive,
		ParentCode:  deref(m.ParentCode),
		Level:       m.Level,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
