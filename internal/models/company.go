package models

import "time"

// Company is the database row shape for the companies table.
type Company struct {
	CompanyID           string    `db:"company_id"`
	Name                string    `db:"name"`
	DefaultCurrencyCode string    `db:"default_currency_code"`
	CreatedAt           time.Time `db:"created_at"`
	CreatedBy           string    `db:"created_by"`
	LastUpdatedAt       time.Time `db:"last_updated_at"`
	LastUpdatedBy       string    `db:"last_updated_by"`
}
