package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with all application services.
// Every writer shares one TenantLocks registry so postings and chart changes of a tenant are serialized.
func NewServiceContainer(repos portsrepo.RepositoryProvider, authorizer portssvc.TenantAuthorizerSvc) *portssvc.ServiceContainer {
	locks := NewTenantLocks()

	accountService := NewAccountService(repos.AccountRepo, repos.JournalRepo,
		WithAccountTenantAuthorizer(authorizer),
		WithAccountConfigReader(repos.ConfigRepo),
		WithAccountTenantLocks(locks))
	configService := NewAccountingConfigService(repos.ConfigRepo, accountService,
		WithConfigTenantAuthorizer(authorizer),
		WithConfigTenantLocks(locks))
	journalService := NewJournalService(repos.JournalRepo, accountService,
		WithJournalTenantAuthorizer(authorizer),
		WithJournalTenantLocks(locks))

	return &portssvc.ServiceContainer{
		Account:    accountService,
		Config:     configService,
		Journal:    journalService,
		Event:      NewEventService(configService, journalService, repos.JournalRepo),
		Ledger:     NewLedgerService(repos.AccountRepo, repos.JournalRepo),
		Reporting:  NewReportingService(repos.AccountRepo, repos.JournalRepo),
		Authorizer: authorizer,
	}
}
