package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/require"
)

const (
	tenantID   = "acme"
	adminID    = "alice"
	accountant = "bob"
	viewerID   = "carol"
)

var chart = []domain.Account{
	{Code: "1", Label: "Capital", Class: 1, Kind: domain.Liability, Level: 1},
	{Code: "101", Label: "Share capital", Class: 1, Kind: domain.Liability, ParentCode: "1", Level: 2},
	{Code: "4", Label: "Third parties", Class: 4, Kind: domain.Asset, Level: 1},
	{Code: "401", Label: "Suppliers", Class: 4, Kind: domain.Liability, ParentCode: "4", Level: 2},
	{Code: "411", Label: "Clients", Class: 4, Kind: domain.Asset, ParentCode: "4", Level: 2},
	{Code: "4456", Label: "VAT deductible", Class: 4, Kind: domain.Asset, ParentCode: "4", Level: 2},
	{Code: "4457", Label: "VAT collected", Class: 4, Kind: domain.Liability, ParentCode: "4", Level: 2},
	{Code: "5", Label: "Treasury", Class: 5, Kind: domain.Treasury, Level: 1},
	{Code: "512", Label: "Bank", Class: 5, Kind: domain.Treasury, ParentCode: "5", Level: 2},
	{Code: "5121", Label: "Bank EUR", Class: 5, Kind: domain.Treasury, ParentCode: "512", Level: 3},
	{Code: "530", Label: "Cash", Class: 5, Kind: domain.Treasury, ParentCode: "5", Level: 2},
	{Code: "6", Label: "Expenses", Class: 6, Kind: domain.Expense, Level: 1},
	{Code: "607", Label: "Purchases of goods", Class: 6, Kind: domain.Expense, ParentCode: "6", Level: 2},
	{Code: "7", Label: "Revenue", Class: 7, Kind: domain.Revenue, Level: 1},
	{Code: "706", Label: "Sales of services", Class: 7, Kind: domain.Revenue, ParentCode: "7", Level: 2},
	{Code: "708", Label: "Closed line", Class: 7, Kind: domain.Revenue, ParentCode: "7", Level: 2},
}

func enabledConfig() domain.AccountingConfig {
	return domain.AccountingConfig{
		Enabled:       true,
		Suppliers:     "401",
		Clients:       "411",
		Bank:          "512",
		Cash:          "530",
		VATDeductible: "4456",
		VATCollected:  "4457",
		Purchases:     "607",
		Sales:         "706",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ledgerEnv is a fully wired service container over the in-memory store.
type ledgerEnv struct {
	store *memory.Store
	svc   *portssvc.ServiceContainer
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	for _, a := range chart {
		a.TenantID = tenantID
		a.Active = a.Code != "708"
		require.NoError(t, store.SaveAccount(ctx, a))
	}
	authorizer := services.NewRosterAuthorizer(
		domain.TenantMember{TenantID: tenantID, UserID: adminID, Role: domain.RoleAdmin},
		domain.TenantMember{TenantID: tenantID, UserID: accountant, Role: domain.RoleAccountant},
		domain.TenantMember{TenantID: tenantID, UserID: viewerID, Role: domain.RoleViewer},
	)
	return &ledgerEnv{
		store: store,
		svc:   services.NewServiceContainer(store.Provider(), authorizer),
	}
}

func (e *ledgerEnv) enableAutomation(t *testing.T) {
	t.Helper()
	_, err := e.svc.Config.UpdateConfig(context.Background(), tenantID, enabledConfig(), 0, adminID)
	require.NoError(t, err)
}

func (e *ledgerEnv) post(t *testing.T, date time.Time, lines ...domain.JournalEntryLine) *domain.JournalEntry {
	t.Helper()
	posted, err := e.svc.Journal.Submit(context.Background(), tenantID, domain.JournalEntry{
		Date:  date,
		Label: "manual",
		Lines: lines,
	}, accountant)
	require.NoError(t, err)
	return posted
}

func debit(code string, amount int64) domain.JournalEntryLine {
	return domain.JournalEntryLine{AccountCode: code, Debit: amount}
}

func credit(code string, amount int64) domain.JournalEntryLine {
	return domain.JournalEntryLine{AccountCode: code, Credit: amount}
}
