package services

import (
	"context"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// TransitionPublisher is the outbound port to the audit/notification
// collaborator. It receives a structured event on every successful entry
// status transition; the ledger core does not persist audit history itself.
type TransitionPublisher interface {
	PublishTransition(ctx context.Context, event domain.TransitionEvent)
}

// ServiceContainer aggregates the service facades for dependency injection
// into the handler layer.
type ServiceContainer struct {
	Company   CompanySvcFacade
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
}
