package services

import (
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
)

// RepositoryProvider bundles the repository facades the service layer is
// wired from.
type RepositoryProvider struct {
	Company   portsrepo.CompanyRepositoryFacade
	Account   portsrepo.AccountRepositoryFacade
	Journal   portsrepo.JournalRepositoryFacade
	Ledger    portsrepo.LedgerRepository
	Reporting portsrepo.ReportingRepository
}

// NewServiceContainer wires every service with its dependencies. The
// transition publisher may be nil, in which case transitions are logged.
func NewServiceContainer(repos RepositoryProvider, publisher portssvc.TransitionPublisher) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.Account)

	return &portssvc.ServiceContainer{
		Company:   NewCompanyService(repos.Company),
		Account:   accountSvc,
		Journal:   NewJournalService(repos.Journal, accountSvc, publisher),
		Ledger:    NewLedgerService(repos.Ledger, accountSvc),
		Reporting: NewReportingService(repos.Reporting),
	}
}
