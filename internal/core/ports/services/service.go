package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Config     AccountingConfigSvc
	Journal    JournalSvcFacade
	Event      EventSvc
	Ledger     LedgerSvc
	Reporting  ReportingService
	Authorizer TenantAuthorizerSvc
}
