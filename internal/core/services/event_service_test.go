package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	env *ledgerEnv
	ctx context.Context
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.env = newLedgerEnv(suite.T())
	suite.ctx = context.Background()
}

func invoiceEvent(ref string) domain.BusinessEvent {
	return domain.BusinessEvent{
		Type:        domain.ClientInvoiceIssued,
		DocumentRef: ref,
		Date:        day(2024, 4, 2),
		AmountHT:    10000,
		AmountVAT:   1900,
		AmountTTC:   11900,
	}
}

func (suite *EventServiceTestSuite) TestProcess_SuppressedWritesNothing() {
	result, err := suite.env.svc.Event.Process(suite.ctx, tenantID, invoiceEvent("INV-1"))

	suite.Require().NoError(err)
	suite.Equal(domain.OutcomeSuppressed, result.Outcome)
	suite.Nil(result.Entry)

	entries, err := suite.env.store.QueryEntries(suite.ctx, tenantID, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *EventServiceTestSuite) TestProcess_PostsAutomaticEntry() {
	suite.env.enableAutomation(suite.T())

	result, err := suite.env.svc.Event.Process(suite.ctx, tenantID, invoiceEvent("INV-1"))

	suite.Require().NoError(err)
	suite.Equal(domain.OutcomePosted, result.Outcome)
	e := result.Entry
	suite.Require().NotNil(e)
	suite.Equal(int64(1), e.Number)
	suite.Equal(domain.Posted, e.Status)
	suite.Equal(domain.OriginAutomatic, e.Origin)
	suite.Equal(services.SystemUserID, e.PostedBy)
	suite.Len(e.Lines, 3)
}

func (suite *EventServiceTestSuite) TestProcess_ReplayIsIdempotent() {
	suite.env.enableAutomation(suite.T())

	first, err := suite.env.svc.Event.Process(suite.ctx, tenantID, invoiceEvent("INV-1"))
	suite.Require().NoError(err)
	again, err := suite.env.svc.Event.Process(suite.ctx, tenantID, invoiceEvent("INV-1"))
	suite.Require().NoError(err)

	suite.Equal(domain.OutcomeAlreadyPosted, again.Outcome)
	suite.Equal(first.Entry.ID, again.Entry.ID)

	entries, err := suite.env.store.QueryEntries(suite.ctx, tenantID, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *EventServiceTestSuite) TestProcess_MalformedEventWritesNothing() {
	suite.env.enableAutomation(suite.T())
	event := invoiceEvent("INV-1")
	event.AmountTTC = 1

	result, err := suite.env.svc.Event.Process(suite.ctx, tenantID, event)

	suite.ErrorIs(err, domain.ErrMalformedEvent)
	suite.Nil(result)
	entries, err := suite.env.store.QueryEntries(suite.ctx, tenantID, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *EventServiceTestSuite) TestProcess_PaymentSettlesClient() {
	suite.env.enableAutomation(suite.T())
	_, err := suite.env.svc.Event.Process(suite.ctx, tenantID, invoiceEvent("INV-1"))
	suite.Require().NoError(err)

	result, err := suite.env.svc.Event.Process(suite.ctx, tenantID, domain.BusinessEvent{
		Type:        domain.ClientPaymentReceived,
		DocumentRef: "PAY-1",
		Date:        day(2024, 4, 20),
		Amount:      11900,
		Means:       domain.MeansBank,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.JournalBank, result.Entry.JournalCode)

	view, err := suite.env.svc.Ledger.Project(suite.ctx, tenantID, "411", day(2024, 1, 1), day(2024, 12, 31))
	suite.Require().NoError(err)
	suite.Zero(view.ClosingDebit)
	suite.Zero(view.ClosingCredit)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
