package repositories

import (
	"context"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// FindCompanyByID retrieves a company by its identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}
