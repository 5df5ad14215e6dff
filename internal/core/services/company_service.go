package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/dto"
	"github.com/meridianpress/ledger/internal/middleware"
)

// companyService manages tenant scopes.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany provisions a new company scope.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, actor domain.Actor) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	currency := req.DefaultCurrencyCode
	if currency == "" {
		currency = "INR"
	}

	company := domain.Company{
		CompanyID:           uuid.NewString(),
		Name:                req.Name,
		DefaultCurrencyCode: currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to save company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompanyByID retrieves a company.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}
