package services

import (
	"context"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/dto"
)

// CompanySvcFacade defines tenant management operations.
type CompanySvcFacade interface {
	// CreateCompany provisions a new company scope.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, actor domain.Actor) (*domain.Company, error)

	// GetCompanyByID retrieves a company.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}
