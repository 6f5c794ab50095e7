package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/platform/seed"
	"github.com/SscSPs/erp_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
tenants:
  - id: acme
    members:
      - user: alice
        role: ADMIN
      - user: bob
        role: ACCOUNTANT
    accounts:
      - {code: "4", label: Third parties, class: 4, kind: LIABILITY}
      - {code: "401", label: Suppliers, class: 4, kind: LIABILITY, parent: "4"}
      - {code: "411", label: Clients, class: 4, kind: ASSET, parent: "4"}
      - {code: "5", label: Treasury, class: 5, kind: TREASURY}
      - {code: "512", label: Bank, class: 5, kind: TREASURY, parent: "5"}
    config:
      enabled: false
      bank: "512"
`

func TestParse_Valid(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Tenants, 1)
	assert.Equal(t, "acme", f.Tenants[0].ID)
	assert.Len(t, f.Tenants[0].Accounts, 5)
	assert.Equal(t, "4", f.Tenants[0].Accounts[1].ParentCode)
	require.NotNil(t, f.Tenants[0].Config)
	assert.Equal(t, "512", f.Tenants[0].Config.Bank)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "tenants:\n  - id: a\n    colour: red\n",
		"no tenants":   "tenants: []\n",
		"bad role":     "tenants:\n  - id: a\n    members:\n      - {user: u, role: OWNER}\n",
		"no admin":     "tenants:\n  - id: a\n    members:\n      - {user: u, role: VIEWER}\n",
		"bad class":    "tenants:\n  - id: a\n    members:\n      - {user: u, role: ADMIN}\n    accounts:\n      - {code: \"9\", label: x, class: 9, kind: ASSET}\n",
		"missing kind": "tenants:\n  - id: a\n    members:\n      - {user: u, role: ADMIN}\n    accounts:\n      - {code: \"4\", label: x, class: 4}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := seed.Parse(strings.NewReader("tenants:\n  - id: a\n    members:\n      - {user: u, role: VIEWER}\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApply_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	store := memory.New()
	roster := services.NewRosterAuthorizer()
	svc := services.NewServiceContainer(store.Provider(), roster)

	sum, err := seed.Apply(ctx, f, roster, svc)
	require.NoError(t, err)
	assert.Equal(t, seed.Summary{Tenants: 1, AccountsCreated: 5, ConfigsApplied: 1}, sum)

	assert.NoError(t, roster.AuthorizeUserAction(ctx, "bob", "acme", domain.RoleAccountant))

	acc, err := svc.Account.Lookup(ctx, "acme", "512")
	require.NoError(t, err)
	assert.Equal(t, 2, acc.Level)
	assert.Equal(t, "alice", acc.CreatedBy)

	cfg, err := svc.Config.GetConfig(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "512", cfg.Bank)

	sum, err = seed.Apply(ctx, f, roster, svc)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.AccountsSkipped)
	assert.Equal(t, 0, sum.AccountsCreated)
}
