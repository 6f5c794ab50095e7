package services_test

import (
	"context"
	"math"
	"sort"
	"sync"
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

type JournalServiceTestSuite struct {
	suite.Suite
	env *ledgerEnv
	ctx context.Context
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.env = newLedgerEnv(suite.T())
	suite.ctx = context.Background()
}

func (suite *JournalServiceTestSuite) submit(lines ...domain.JournalEntryLine) (*domain.JournalEntry, error) {
	return suite.env.svc.Journal.Submit(suite.ctx, tenantID, domain.JournalEntry{
		Date:  day(2024, 3, 1),
		Label: "Office supplies",
		Lines: lines,
	}, accountant)
}

func (suite *JournalServiceTestSuite) requireKind(err error, kind domain.ValidationKind) *domain.ValidationError {
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	ve, ok := domain.AsValidationError(err)
	suite.Require().True(ok, "expected a ValidationError, got %v", err)
	suite.Equal(kind, ve.Kind)
	return ve
}

func (suite *JournalServiceTestSuite) requireNothingPosted() {
	entries, err := suite.env.store.QueryEntries(suite.ctx, tenantID, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *JournalServiceTestSuite) TestSubmit_Success() {
	posted, err := suite.submit(debit("607", 1200), credit("512", 1200))

	suite.Require().NoError(err)
	suite.NotEmpty(posted.ID)
	suite.Equal(int64(1), posted.Number)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(domain.OriginManual, posted.Origin)
	suite.Equal(accountant, posted.PostedBy)
	suite.True(posted.IsBalanced())
	suite.Equal(1, posted.Lines[0].LineNo)
	suite.Equal(2, posted.Lines[1].LineNo)

	second, err := suite.submit(debit("411", 10), credit("706", 10))
	suite.Require().NoError(err)
	suite.Equal(int64(2), second.Number)
}

func (suite *JournalServiceTestSuite) TestSubmit_NormalizesDate() {
	posted, err := suite.env.svc.Journal.Submit(suite.ctx, tenantID, domain.JournalEntry{
		Date:  day(2024, 3, 1).Add(15*time.Hour + 30*time.Minute),
		Label: "late",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("512", 1)},
	}, accountant)
	suite.Require().NoError(err)
	suite.Equal(day(2024, 3, 1), posted.Date)
}

func (suite *JournalServiceTestSuite) TestSubmit_TooFewLines() {
	_, err := suite.submit(debit("607", 100))
	ve := suite.requireKind(err, domain.TooFewLines)
	suite.Equal(-1, ve.LineIndex)
	suite.requireNothingPosted()
}

func (suite *JournalServiceTestSuite) TestSubmit_UnknownAccount() {
	cases := map[string]string{
		"missing":  "999",
		"inactive": "708",
		"header":   "6",
	}
	for name, code := range cases {
		suite.Run(name, func() {
			_, err := suite.submit(debit("607", 100), credit(code, 100))
			ve := suite.requireKind(err, domain.UnknownAccount)
			suite.Equal(1, ve.LineIndex)
			suite.Equal(code, ve.AccountCode)
		})
	}
	suite.requireNothingPosted()
}

func (suite *JournalServiceTestSuite) TestSubmit_MixedOrEmptyLine() {
	cases := map[string]domain.JournalEntryLine{
		"both sides": {AccountCode: "512", Debit: 50, Credit: 50},
		"empty":      {AccountCode: "512"},
		"negative":   {AccountCode: "512", Debit: -50},
	}
	for name, line := range cases {
		suite.Run(name, func() {
			_, err := suite.submit(debit("607", 50), line)
			ve := suite.requireKind(err, domain.MixedOrEmptyLine)
			suite.Equal(1, ve.LineIndex)
		})
	}
	suite.requireNothingPosted()
}

func (suite *JournalServiceTestSuite) TestSubmit_UnbalancedReportsGap() {
	_, err := suite.submit(debit("607", 100), credit("512", 150))

	ve := suite.requireKind(err, domain.Unbalanced)
	suite.Equal(int64(50), ve.Gap)
	suite.requireNothingPosted()

	n, err := suite.env.store.NextEntryNumber(suite.ctx, tenantID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *JournalServiceTestSuite) TestSubmit_AmountOutOfRange() {
	_, err := suite.submit(
		debit("607", math.MaxInt64),
		debit("607", math.MaxInt64),
		debit("607", 3),
		credit("512", 1),
	)
	ve := suite.requireKind(err, domain.AmountOutOfRange)
	suite.Equal(1, ve.LineIndex)
	suite.Equal("607", ve.AccountCode)
	suite.requireNothingPosted()

	_, err = suite.submit(debit("607", math.MaxInt64), credit("512", math.MaxInt64))
	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestSubmit_MissingField() {
	_, err := suite.env.svc.Journal.Submit(suite.ctx, tenantID, domain.JournalEntry{
		Label: "no date",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("512", 1)},
	}, accountant)
	ve := suite.requireKind(err, domain.MissingField)
	suite.Equal("date", ve.Field)

	_, err = suite.env.svc.Journal.Submit(suite.ctx, tenantID, domain.JournalEntry{
		Date:  day(2024, 3, 1),
		Label: "   ",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("512", 1)},
	}, accountant)
	ve = suite.requireKind(err, domain.MissingField)
	suite.Equal("label", ve.Field)
}

func (suite *JournalServiceTestSuite) TestSubmit_FirstFailureWins() {
	// Unknown account and unbalanced: the account check runs first.
	_, err := suite.submit(debit("999", 100), credit("512", 150))
	suite.requireKind(err, domain.UnknownAccount)

	// Mixed line and unbalanced: exclusivity runs before the balance check.
	_, err = suite.submit(domain.JournalEntryLine{AccountCode: "607", Debit: 10, Credit: 10}, credit("512", 150))
	suite.requireKind(err, domain.MixedOrEmptyLine)
}

func (suite *JournalServiceTestSuite) TestSubmit_ViewerCannotPostManual() {
	_, err := suite.env.svc.Journal.Submit(suite.ctx, tenantID, domain.JournalEntry{
		Date:  day(2024, 3, 1),
		Label: "nope",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("512", 1)},
	}, viewerID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.requireNothingPosted()
}

func (suite *JournalServiceTestSuite) TestSubmit_ReturnedEntryIsACopy() {
	posted, err := suite.submit(debit("607", 100), credit("512", 100))
	suite.Require().NoError(err)

	posted.Lines[0].Debit = 1

	stored, err := suite.env.svc.Journal.GetEntry(suite.ctx, tenantID, posted.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(100), stored.Lines[0].Debit)
}

func (suite *JournalServiceTestSuite) TestSubmit_ConcurrentPostingsGetDistinctNumbers() {
	const workers = 25
	var wg sync.WaitGroup
	numbers := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posted, err := suite.submit(debit("607", 10), credit("512", 10))
			if assert.NoError(suite.T(), err) {
				numbers <- posted.Number
			}
		}()
	}
	wg.Wait()
	close(numbers)

	var got []int64
	for n := range numbers {
		got = append(got, n)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	suite.Require().Len(got, workers)
	for i, n := range got {
		suite.Equal(int64(i+1), n)
	}
}

func (suite *JournalServiceTestSuite) TestReverse() {
	original, err := suite.submit(debit("607", 800), debit("4456", 160), credit("401", 960))
	suite.Require().NoError(err)

	reversal, err := suite.env.svc.Journal.Reverse(suite.ctx, tenantID, original.ID, day(2024, 3, 5), "", accountant)
	suite.Require().NoError(err)
	suite.Equal(original.ID, reversal.ReversesEntryID)
	suite.Equal("Reversal of entry #1", reversal.Label)
	suite.Equal(day(2024, 3, 5), reversal.Date)
	suite.Require().Len(reversal.Lines, 3)
	for i, l := range reversal.Lines {
		suite.Equal(original.Lines[i].Debit, l.Credit)
		suite.Equal(original.Lines[i].Credit, l.Debit)
	}

	// The original is untouched.
	stored, err := suite.env.svc.Journal.GetEntry(suite.ctx, tenantID, original.ID)
	suite.Require().NoError(err)
	suite.Equal(original.Lines, stored.Lines)

	_, err = suite.env.svc.Journal.Reverse(suite.ctx, tenantID, original.ID, day(2024, 3, 6), "", accountant)
	suite.ErrorIs(err, domain.ErrAlreadyReversed)
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.env.svc.Journal.Reverse(suite.ctx, tenantID, reversal.ID, day(2024, 3, 6), "", accountant)
	suite.ErrorIs(err, domain.ErrAlreadyReversed)
}

func (suite *JournalServiceTestSuite) TestReverse_NotFound() {
	_, err := suite.env.svc.Journal.Reverse(suite.ctx, tenantID, "missing", day(2024, 3, 5), "", accountant)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListEntries() {
	suite.env.post(suite.T(), day(2024, 2, 1), debit("607", 1), credit("512", 1))
	suite.env.post(suite.T(), day(2024, 1, 1), debit("607", 2), credit("512", 2))
	suite.env.post(suite.T(), day(2024, 3, 1), debit("411", 3), credit("706", 3))

	all, err := suite.env.svc.Journal.ListEntries(suite.ctx, tenantID, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(day(2024, 1, 1), all[0].Date)
	suite.Equal(day(2024, 3, 1), all[2].Date)

	from, to := day(2024, 3, 1), day(2024, 1, 1)
	_, err = suite.env.svc.Journal.ListEntries(suite.ctx, tenantID, domain.EntryFilter{DateFrom: &from, DateTo: &to})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func TestJournalService_AppendFailureIsSurfaced(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	journal := new(MockJournalRepository)
	authorizer := new(MockAuthorizer)

	postable := &domain.Account{TenantID: tenantID, Code: "607", Active: true, Level: 2}
	accounts.On("FindAccountByCode", ctx, tenantID, mock.AnythingOfType("string")).Return(postable, nil)
	authorizer.On("CanPostManualEntry", ctx, accountant, tenantID).Return(true).Once()
	journal.On("NextEntryNumber", ctx, tenantID).Return(int64(7), nil).Once()
	journal.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool { return e.Number == 7 })).Return(assert.AnError).Once()

	registry := services.NewAccountService(accounts, journal)
	svc := services.NewJournalService(journal, registry, services.WithJournalTenantAuthorizer(authorizer))

	posted, err := svc.Submit(ctx, tenantID, domain.JournalEntry{
		Date:  day(2024, 3, 1),
		Label: "x",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("607", 1)},
	}, accountant)

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, posted)
	journal.AssertExpectations(t)
	authorizer.AssertExpectations(t)
}

func TestJournalService_ManualEntryNeedsPostingRight(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	journal := new(MockJournalRepository)
	authorizer := new(MockAuthorizer)
	authorizer.On("CanPostManualEntry", ctx, viewerID, tenantID).Return(false).Once()

	draft := domain.JournalEntry{
		Date:  day(2024, 3, 1),
		Label: "x",
		Lines: []domain.JournalEntryLine{debit("607", 1), credit("512", 1)},
	}
	registry := services.NewAccountService(accounts, journal)

	svc := services.NewJournalService(journal, registry, services.WithJournalTenantAuthorizer(authorizer))
	_, err := svc.Submit(ctx, tenantID, draft, viewerID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	unguarded := services.NewJournalService(journal, registry)
	_, err = unguarded.Submit(ctx, tenantID, draft, accountant)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	authorizer.AssertExpectations(t)
	authorizer.AssertNotCalled(t, "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	journal.AssertNotCalled(t, "NextEntryNumber", mock.Anything, mock.Anything)
	journal.AssertNotCalled(t, "AppendEntry", mock.Anything, mock.Anything)
	accounts.AssertNotCalled(t, "FindAccountByCode", mock.Anything, mock.Anything, mock.Anything)
}
