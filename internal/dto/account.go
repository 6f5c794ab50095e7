package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code       string             `json:"code" binding:"required,numeric,min=1,max=12" yaml:"code" validate:"required,numeric,min=1,max=12"`
	Label      string             `json:"label" binding:"required,max=255" yaml:"label" validate:"required,max=255"`
	Class      int                `json:"class" binding:"required,min=1,max=7" yaml:"class" validate:"required,min=1,max=7"`
	Kind       domain.AccountKind `json:"kind" binding:"required,oneof=ASSET LIABILITY EXPENSE REVENUE TREASURY" yaml:"kind" validate:"required,oneof=ASSET LIABILITY EXPENSE REVENUE TREASURY"`
	ParentCode string             `json:"parentCode" yaml:"parent" validate:"omitempty,numeric"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Label string `json:"label" binding:"required,max=255"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code          string             `json:"code"`
	Label         string             `json:"label"`
	Class         int                `json:"class"`
	Kind          domain.AccountKind `json:"kind"`
	NormalSide    domain.Side        `json:"normalSide"`
	Active        bool               `json:"active"`
	ParentCode    string             `json:"parentCode,omitempty"`
	Level         int                `json:"level"`
	Postable      bool               `json:"postable"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Label:         acc.Label,
		Class:         acc.Class,
		Kind:          acc.Kind,
		NormalSide:    acc.NormalSide(),
		Active:        acc.Active,
		ParentCode:    acc.ParentCode,
		Level:         acc.Level,
		Postable:      acc.IsPostable(),
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain accounts to responses.
func ToListAccountsResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
