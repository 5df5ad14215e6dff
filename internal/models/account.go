package models

import "time"

// Account is the database row shape for the accounts table.
// ParentAccountID is nullable; normal_side is stored denormalized for index
// friendliness but always derived from account_type at write time.
type Account struct {
	AccountID       string    `db:"account_id"`
	CompanyID       string    `db:"company_id"`
	Name            string    `db:"name"`
	AccountType     string    `db:"account_type"`
	NormalSide      string    `db:"normal_side"`
	CurrencyCode    string    `db:"currency_code"`
	ParentAccountID *string   `db:"parent_account_id"`
	Description     string    `db:"description"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	CreatedBy       string    `db:"created_by"`
	LastUpdatedAt   time.Time `db:"last_updated_at"`
	LastUpdatedBy   string    `db:"last_updated_by"`
}
