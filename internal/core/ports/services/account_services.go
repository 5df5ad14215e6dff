package services

import (
	"context"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the account registry.
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account, enforcing tenant isolation: a
	// missing account and a cross-company account both yield ErrNotFound.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// GetAccountByIDs retrieves multiple accounts of one company by their IDs.
	GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the account registry.
type AccountWriterSvc interface {
	// CreateAccount persists a new account in the company's chart of accounts.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error)

	// UpdateAccount updates an account's mutable details (name, description,
	// parent). The account type is immutable.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error)

	// DeactivateAccount soft-disables an account. Fails with ErrHasChildren
	// while active child accounts exist.
	DeactivateAccount(ctx context.Context, companyID string, accountID string, actor domain.Actor) error
}

// AccountSvcFacade combines all account registry service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
