package models

// Account is a row of the accounts table.
// ParentCode is nil for class headers.
type Account struct {
	TenantID   string  `db:"tenant_id"`
	Code       string  `db:"code"`
	Label      string  `db:"label"`
	Class      int     `db:"class"`
	Kind       string  `db:"kind"`
	IsActive   bool    `db:"is_active"`
	ParentCode *string `db:"parent_code"`
	Level      int     `db:"level"`
	AuditFields
}
