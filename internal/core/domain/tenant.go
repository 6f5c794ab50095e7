package domain

// TenantRole defines the possible roles a user can have within a tenant.
type TenantRole string

const (
	RoleAdmin      TenantRole = "ADMIN"
	RoleAccountant TenantRole = "ACCOUNTANT"
	RoleViewer     TenantRole = "VIEWER"
)

var roleRank = map[TenantRole]int{
	RoleViewer:     1,
	RoleAccountant: 2,
	RoleAdmin:      3,
}

// IsValid reports whether r is a known role.
func (r TenantRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether r grants at least the required role.
func (r TenantRole) Satisfies(required TenantRole) bool {
	return roleRank[r] >= roleRank[required] && roleRank[r] > 0
}

// TenantMember is a user's membership in a tenant.
type TenantMember struct {
	TenantID string     `json:"tenantID" yaml:"-"`
	UserID   string     `json:"userID" yaml:"user"`
	Role     TenantRole `json:"role" yaml:"role"`
}
