package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAccountRepository
	mockJournal    *MockJournalRepository
	mockConfig     *MockConfigRepository
	mockAuthorizer *MockAuthorizer
	service        portssvc.AccountSvcFacade
	now            time.Time
	ctx            context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockJournal = new(MockJournalRepository)
	suite.mockConfig = new(MockConfigRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.now = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockJournal,
		services.WithAccountTenantAuthorizer(suite.mockAuthorizer),
		services.WithAccountConfigReader(suite.mockConfig),
		services.WithAccountClock(func() time.Time { return suite.now }))
}

func (suite *AccountServiceTestSuite) allowAdmin() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, adminID, tenantID, domain.RoleAdmin).Return(nil)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.allowAdmin()
	parent := &domain.Account{TenantID: tenantID, Code: "5", Class: 5, Kind: domain.Treasury, Active: true, Level: 1}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "5").Return(parent, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, tenantID, dto.CreateAccountRequest{
		Code:       "512",
		Label:      " Bank ",
		Class:      5,
		Kind:       domain.Treasury,
		ParentCode: "5",
	}, adminID)

	suite.Require().NoError(err)
	suite.Equal("512", created.Code)
	suite.Equal("Bank", created.Label)
	suite.Equal(2, created.Level)
	suite.True(created.Active)
	suite.True(created.IsPostable())
	suite.Equal(adminID, created.CreatedBy)
	suite.Equal(suite.now, created.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ClassHeader() {
	suite.allowAdmin()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool { return a.Level == 1 })).Return(nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, tenantID, dto.CreateAccountRequest{
		Code: "6", Label: "Expenses", Class: 6, Kind: domain.Expense,
	}, adminID)

	suite.Require().NoError(err)
	suite.True(created.IsHeader())
	suite.False(created.IsPostable())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ValidationErrors() {
	suite.allowAdmin()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "6").
		Return(&domain.Account{Code: "6", Class: 6, Level: 1}, nil)
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "9").
		Return(nil, apperrors.ErrNotFound)

	tests := map[string]dto.CreateAccountRequest{
		"non numeric code":    {Code: "51A", Label: "x", Class: 5, Kind: domain.Treasury},
		"class mismatch":      {Code: "612", Label: "x", Class: 5, Kind: domain.Treasury},
		"class out of range":  {Code: "812", Label: "x", Class: 8, Kind: domain.Asset},
		"unknown kind":        {Code: "512", Label: "x", Class: 5, Kind: "EQUITY"},
		"empty label":         {Code: "512", Label: " ", Class: 5, Kind: domain.Treasury},
		"parent other class":  {Code: "512", Label: "x", Class: 5, Kind: domain.Treasury, ParentCode: "6"},
		"parent missing":      {Code: "512", Label: "x", Class: 5, Kind: domain.Treasury, ParentCode: "9"},
	}
	for name, req := range tests {
		suite.Run(name, func() {
			created, err := suite.service.CreateAccount(suite.ctx, tenantID, req, adminID)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Nil(created)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Forbidden() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, viewerID, tenantID, domain.RoleAdmin).Return(apperrors.ErrForbidden).Once()

	created, err := suite.service.CreateAccount(suite.ctx, tenantID, dto.CreateAccountRequest{
		Code: "512", Label: "Bank", Class: 5, Kind: domain.Treasury,
	}, viewerID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	suite.allowAdmin()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	created, err := suite.service.CreateAccount(suite.ctx, tenantID, dto.CreateAccountRequest{
		Code: "7", Label: "Revenue", Class: 7, Kind: domain.Revenue,
	}, adminID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestIsPostable() {
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "512").
		Return(&domain.Account{Code: "512", Active: true, Level: 2}, nil).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "5").
		Return(&domain.Account{Code: "5", Active: true, Level: 1}, nil).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "708").
		Return(&domain.Account{Code: "708", Active: false, Level: 2}, nil).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "999").
		Return(nil, apperrors.ErrNotFound).Once()

	for code, want := range map[string]bool{"512": true, "5": false, "708": false, "999": false} {
		got, err := suite.service.IsPostable(suite.ctx, tenantID, code)
		suite.Require().NoError(err)
		suite.Equal(want, got, code)
	}
}

func (suite *AccountServiceTestSuite) TestIsPostable_RepositoryFailure() {
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "512").Return(nil, assert.AnError).Once()

	ok, err := suite.service.IsPostable(suite.ctx, tenantID, "512")

	suite.ErrorIs(err, assert.AnError)
	suite.False(ok)
}

func (suite *AccountServiceTestSuite) TestListByClass() {
	suite.mockRepo.On("ListAccounts", suite.ctx, tenantID).Return([]domain.Account{
		{Code: "607", Class: 6}, {Code: "512", Class: 5}, {Code: "5", Class: 5},
	}, nil).Once()

	accounts, err := suite.service.ListByClass(suite.ctx, tenantID, 5)

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 2)
	suite.Equal("5", accounts[0].Code)
	suite.Equal("512", accounts[1].Code)

	_, err = suite.service.ListByClass(suite.ctx, tenantID, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccountLabel() {
	suite.allowAdmin()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "512").
		Return(&domain.Account{TenantID: tenantID, Code: "512", Label: "Bank", Active: true, Level: 2}, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Label == "Main bank" && a.LastUpdatedBy == adminID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccountLabel(suite.ctx, tenantID, "512", "Main bank", adminID)

	suite.Require().NoError(err)
	suite.Equal("Main bank", updated.Label)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Referenced() {
	suite.allowAdmin()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "512").
		Return(&domain.Account{TenantID: tenantID, Code: "512", Active: true, Level: 2}, nil).Once()
	suite.mockJournal.On("IsAccountReferenced", suite.ctx, tenantID, "512").Return(true, nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, tenantID, "512", adminID)

	suite.ErrorIs(err, domain.ErrAccountReferenced)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Unused() {
	suite.allowAdmin()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "530").
		Return(&domain.Account{TenantID: tenantID, Code: "530", Active: true, Level: 2}, nil).Once()
	suite.mockJournal.On("IsAccountReferenced", suite.ctx, tenantID, "530").Return(false, nil).Once()
	suite.mockConfig.On("GetConfig", suite.ctx, tenantID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool { return !a.Active })).Return(nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, tenantID, "530", adminID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_ConfiguredSlot() {
	suite.allowAdmin()
	cfg := enabledConfig()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "530").
		Return(&domain.Account{TenantID: tenantID, Code: "530", Active: true, Level: 2}, nil).Once()
	suite.mockJournal.On("IsAccountReferenced", suite.ctx, tenantID, "530").Return(false, nil).Once()
	suite.mockConfig.On("GetConfig", suite.ctx, tenantID).Return(&cfg, nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, tenantID, "530", adminID)

	suite.ErrorIs(err, domain.ErrAccountConfigured)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorContains(err, string(domain.SlotCash))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_DisabledConfigDoesNotBlock() {
	suite.allowAdmin()
	cfg := enabledConfig()
	cfg.Enabled = false
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "530").
		Return(&domain.Account{TenantID: tenantID, Code: "530", Active: true, Level: 2}, nil).Once()
	suite.mockJournal.On("IsAccountReferenced", suite.ctx, tenantID, "530").Return(false, nil).Once()
	suite.mockConfig.On("GetConfig", suite.ctx, tenantID).Return(&cfg, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool { return !a.Active })).Return(nil).Once()

	suite.Require().NoError(suite.service.DeactivateAccount(suite.ctx, tenantID, "530", adminID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_ConfigReadFailure() {
	suite.allowAdmin()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, tenantID, "530").
		Return(&domain.Account{TenantID: tenantID, Code: "530", Active: true, Level: 2}, nil).Once()
	suite.mockJournal.On("IsAccountReferenced", suite.ctx, tenantID, "530").Return(false, nil).Once()
	suite.mockConfig.On("GetConfig", suite.ctx, tenantID).Return(nil, assert.AnError).Once()

	err := suite.service.DeactivateAccount(suite.ctx, tenantID, "530", adminID)

	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestAccountService_NoAuthorizerRefusesWrites(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo, new(MockJournalRepository))

	_, err := svc.CreateAccount(context.Background(), tenantID, dto.CreateAccountRequest{
		Code: "512", Label: "Bank", Class: 5, Kind: domain.Treasury,
	}, adminID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
}

func TestDeactivateAccount_KeepsConfiguredAccountsPostable(t *testing.T) {
	env := newLedgerEnv(t)
	env.enableAutomation(t)
	ctx := context.Background()

	err := env.svc.Account.DeactivateAccount(ctx, tenantID, "530", adminID)
	assert.ErrorIs(t, err, domain.ErrAccountConfigured)

	postable, err := env.svc.Account.IsPostable(ctx, tenantID, "530")
	require.NoError(t, err)
	assert.True(t, postable)

	outcome, err := env.svc.Event.Process(ctx, tenantID, domain.BusinessEvent{
		Type:        domain.ClientPaymentReceived,
		DocumentRef: "PAY-1",
		Date:        day(2024, 4, 2),
		Amount:      500,
		Means:       domain.MeansCash,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePosted, outcome.Outcome)
}
