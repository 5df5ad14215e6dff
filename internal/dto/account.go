package dto

import (
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	Name            string  `json:"name" binding:"required"`
	AccountType     string  `json:"accountType" binding:"required,accounttype"`
	CurrencyCode    string  `json:"currencyCode" binding:"omitempty,len=3"`
	ParentAccountID *string `json:"parentAccountID"`
	Description     string  `json:"description"`
}

// UpdateAccountRequest defines the payload for updating an account.
// Account type is deliberately absent: it is immutable once lines reference
// the account.
type UpdateAccountRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ParentAccountID *string `json:"parentAccountID"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	CompanyID       string    `json:"companyID"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	NormalSide      string    `json:"normalSide"`
	CurrencyCode    string    `json:"currencyCode"`
	ParentAccountID string    `json:"parentAccountID,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		CompanyID:       a.CompanyID,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		NormalSide:      string(a.NormalSide),
		CurrencyCode:    a.CurrencyCode,
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		CreatedBy:       a.CreatedBy,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
