package domain

import "fmt"

// AccountKind defines the fundamental accounting nature of an account.
type AccountKind string

const (
	Asset     AccountKind = "ASSET"
	Liability AccountKind = "LIABILITY"
	Expense   AccountKind = "EXPENSE"
	Revenue   AccountKind = "REVENUE"
	Treasury  AccountKind = "TREASURY"
)

// IsValid reports whether k is one of the known account kinds.
func (k AccountKind) IsValid() bool {
	switch k {
	case Asset, Liability, Expense, Revenue, Treasury:
		return true
	}
	return false
}

// Side is one of the two columns of a double-entry line.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// NormalSide returns the side on which balances of this kind are conventionally expressed.
func (k AccountKind) NormalSide() Side {
	switch k {
	case Liability, Revenue:
		return Credit
	default:
		return Debit
	}
}

// Class headers of the chart of accounts.
const (
	MinClass = 1
	MaxClass = 7
)

var classNames = map[int]string{
	1: "Equity",
	2: "Fixed assets",
	3: "Inventory",
	4: "Third parties",
	5: "Treasury",
	6: "Expenses",
	7: "Revenue",
}

// ClassName returns the display name of an account class.
func ClassName(class int) string {
	if name, ok := classNames[class]; ok {
		return name
	}
	return fmt.Sprintf("Class %d", class)
}

// ValidClass reports whether class is within the chart's 1–7 range.
func ValidClass(class int) bool {
	return class >= MinClass && class <= MaxClass
}

// Account is a node of a tenant's chart of accounts.
type Account struct {
	TenantID   string      `json:"tenantID"`
	Code       string      `json:"code"`
	Label      string      `json:"label"`
	Class      int         `json:"class"`
	Kind       AccountKind `json:"kind"`
	Active     bool        `json:"active"`
	ParentCode string      `json:"parentCode,omitempty"`
	Level      int         `json:"level"`
	AuditFields
}

// NormalSide is derived from the account kind and never stored.
func (a Account) NormalSide() Side {
	return a.Kind.NormalSide()
}

// IsHeader reports whether the account is a class header (aggregation only).
func (a Account) IsHeader() bool {
	return a.Level <= 1
}

// IsPostable reports whether journal lines may reference this account.
func (a Account) IsPostable() bool {
	return a.Active && a.Level >= 2
}

// ClassFromCode returns the class encoded in the first digit of an account code.
func ClassFromCode(code string) (int, bool) {
	if code == "" || code[0] < '0' || code[0] > '9' {
		return 0, false
	}
	return int(code[0] - '0'), true
}

// IsNumericCode reports whether every character of code is an ASCII digit.
func IsNumericCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
