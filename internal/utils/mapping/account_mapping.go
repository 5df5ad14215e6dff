package mapping

import (
	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/models"
)

// ToModelAccount converts a domain account to its database row shape.
func ToModelAccount(a domain.Account) models.Account {
	var parentID *string
	if a.ParentAccountID != "" {
		parentID = &a.ParentAccountID
	}
	return models.Account{
		AccountID:       a.AccountID,
		CompanyID:       a.CompanyID,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		NormalSide:      string(a.NormalSide),
		CurrencyCode:    a.CurrencyCode,
		ParentAccountID: parentID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		CreatedBy:       a.CreatedBy,
		LastUpdatedAt:   a.LastUpdatedAt,
		LastUpdatedBy:   a.LastUpdatedBy,
	}
}

// ToDomainAccount converts a database row to the domain account.
func ToDomainAccount(m models.Account) domain.Account {
	parentID := ""
	if m.ParentAccountID != nil {
		parentID = *m.ParentAccountID
	}
	return domain.Account{
		AccountID:       m.AccountID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		NormalSide:      domain.NormalSide(m.NormalSide),
		CurrencyCode:    m.CurrencyCode,
		ParentAccountID: parentID,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
