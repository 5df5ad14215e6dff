package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	"github.com/meridianpress/ledger/internal/models"
)

// PgxCompanyRepository persists company (tenant) records.
type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// SaveCompany persists a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, default_currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.DefaultCurrencyCode,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert company "+company.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, default_currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM companies WHERE company_id = $1;
	`
	var m models.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID,
		&m.Name,
		&m.DefaultCurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query company "+companyID, err)
	}

	return &domain.Company{
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}
