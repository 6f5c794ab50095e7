package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	env *ledgerEnv
	ctx context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.env = newLedgerEnv(suite.T())
	suite.ctx = context.Background()
	suite.env.enableAutomation(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AfterEvents() {
	t := suite.T()
	events := []domain.BusinessEvent{
		{Type: domain.ClientInvoiceIssued, DocumentRef: "INV-1", Date: day(2024, 1, 10), AmountHT: 10000, AmountVAT: 1900, AmountTTC: 11900},
		{Type: domain.SupplierInvoiceRecorded, DocumentRef: "SUP-1", Date: day(2024, 1, 12), AmountHT: 4000, AmountVAT: 800, AmountTTC: 4800},
		{Type: domain.ClientPaymentReceived, DocumentRef: "PAY-1", Date: day(2024, 1, 20), Amount: 11900, Means: domain.MeansBank},
		{Type: domain.SupplierPaymentMade, DocumentRef: "PAY-2", Date: day(2024, 2, 5), Amount: 4800, Means: domain.MeansCash},
	}
	for _, e := range events {
		_, err := suite.env.svc.Event.Process(suite.ctx, tenantID, e)
		require.NoError(t, err)
	}

	tb, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 1, 31))
	suite.Require().NoError(err)

	suite.True(tb.Balanced)
	suite.Equal(tb.TotalDebit, tb.TotalCredit)
	codes := make([]string, 0, len(tb.Rows))
	for _, r := range tb.Rows {
		codes = append(codes, r.AccountCode)
	}
	suite.Equal([]string{"401", "411", "4456", "4457", "512", "607", "706"}, codes)

	clients := tb.Rows[1]
	suite.Equal("Clients", clients.AccountLabel)
	suite.Equal(int64(11900), clients.MovementDebit)
	suite.Equal(int64(11900), clients.MovementCredit)
	suite.Zero(clients.BalanceDebit)
	suite.Zero(clients.BalanceCredit)

	suite.Equal(int64(4800), tb.Rows[0].BalanceCredit)

	suite.Require().Len(tb.Classes, 4)
	suite.Equal(4, tb.Classes[0].Class)
	suite.Equal(7, tb.Classes[3].Class)
	suite.Equal(domain.ClassName(6), tb.Classes[2].Name)
	suite.Equal(int64(11900+800), tb.Classes[0].MovementDebit)

	// The cash payment is dated after the first cut-off.
	later, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 12, 31))
	suite.Require().NoError(err)
	suite.True(later.Balanced)
	suite.Len(later.Rows, 8)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ConservationAfterReversal() {
	t := suite.T()
	first := suite.env.post(t, day(2024, 3, 1), debit("607", 333), debit("4456", 67), credit("401", 400))
	suite.env.post(t, day(2024, 3, 2), debit("512", 1), credit("706", 1))
	_, err := suite.env.svc.Journal.Reverse(suite.ctx, tenantID, first.ID, day(2024, 3, 3), "", accountant)
	suite.Require().NoError(err)

	tb, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 3, 31))
	suite.Require().NoError(err)
	suite.True(tb.Balanced)
	suite.Equal(int64(1), tb.TotalDebit)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Empty() {
	tb, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 3, 31))
	suite.Require().NoError(err)
	suite.Empty(tb.Rows)
	suite.Empty(tb.Classes)
	suite.True(tb.Balanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RequiresDate() {
	_, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RefusesTotalsOutOfRange() {
	t := suite.T()
	suite.env.post(t, day(2024, 1, 5), debit("607", math.MaxInt64), credit("512", math.MaxInt64))
	suite.env.post(t, day(2024, 1, 6), debit("607", 1), credit("512", 1))

	_, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 1, 31))

	suite.ErrorIs(err, domain.ErrAmountOverflow)
	suite.ErrorIs(err, apperrors.ErrValidation)

	tb, err := suite.env.svc.Reporting.TrialBalance(suite.ctx, tenantID, day(2024, 1, 5))
	suite.Require().NoError(err)
	suite.True(tb.Balanced)
	suite.Equal(int64(math.MaxInt64), tb.TotalDebit)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func TestTrialBalance_FlagsCorruptStore(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	journal := new(MockJournalRepository)

	corrupt := []domain.JournalEntry{{
		Number: 1,
		Date:   day(2024, 1, 1),
		Lines:  []domain.JournalEntryLine{debit("607", 10), credit("512", 9)},
	}}
	journal.On("QueryEntries", ctx, tenantID, mock.AnythingOfType("domain.EntryFilter")).Return(corrupt, nil).Once()
	accounts.On("ListAccounts", ctx, tenantID).Return([]domain.Account{}, nil).Once()

	tb, err := services.NewReportingService(accounts, journal).TrialBalance(ctx, tenantID, day(2024, 1, 31))

	require.NoError(t, err)
	assert.False(t, tb.Balanced)
	assert.Equal(t, int64(10), tb.TotalDebit)
	assert.Equal(t, int64(9), tb.TotalCredit)
	journal.AssertExpectations(t)
	accounts.AssertExpectations(t)
}
