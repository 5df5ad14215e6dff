package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database row shape for the journal_entries table.
type JournalEntry struct {
	EntryID           string    `db:"entry_id"`
	CompanyID         string    `db:"company_id"`
	EntryDate         time.Time `db:"entry_date"`
	Memo              string    `db:"memo"`
	CurrencyCode      string    `db:"currency_code"`
	Status            string    `db:"status"`
	SourceReference   *string   `db:"source_reference"`
	ReversalOfEntryID *string   `db:"reversal_of_entry_id"`
	ReversedByEntryID *string   `db:"reversed_by_entry_id"`
	VoidReason        *string   `db:"void_reason"`
	CreatedAt         time.Time `db:"created_at"`
	CreatedBy         string    `db:"created_by"`
	LastUpdatedAt     time.Time `db:"last_updated_at"`
	LastUpdatedBy     string    `db:"last_updated_by"`
}

// JournalLine is the database row shape for the journal_lines table.
// Monetary columns are NUMERIC and scanned into decimals; floating point is
// never involved.
type JournalLine struct {
	LineID        string          `db:"line_id"`
	EntryID       string          `db:"entry_id"`
	AccountID     string          `db:"account_id"`
	DebitAmount   decimal.Decimal `db:"debit_amount"`
	CreditAmount  decimal.Decimal `db:"credit_amount"`
	LineOrdinal   int             `db:"line_ordinal"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
	LastUpdatedBy string          `db:"last_updated_by"`
}
