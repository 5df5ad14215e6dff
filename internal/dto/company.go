package dto

import (
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// CreateCompanyRequest defines the payload for creating a company.
type CreateCompanyRequest struct {
	Name                string `json:"name" binding:"required"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"omitempty,len=3"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID           string    `json:"companyID"`
	Name                string    `json:"name"`
	DefaultCurrencyCode string    `json:"defaultCurrencyCode"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:           c.CompanyID,
		Name:                c.Name,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		CreatedAt:           c.CreatedAt,
	}
}
