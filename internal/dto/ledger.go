package dto

import (
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams holds the optional date window for an account ledger query.
type LedgerParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// LedgerRowResponse is one ledger line with the balance after it.
type LedgerRowResponse struct {
	EntryID        string          `json:"entryID"`
	EntryDate      time.Time       `json:"entryDate"`
	EntryMemo      string          `json:"entryMemo,omitempty"`
	LineID         string          `json:"lineID"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	Description    string          `json:"description,omitempty"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse is the ordered ledger of one account.
type LedgerResponse struct {
	AccountID string              `json:"accountID"`
	Rows      []LedgerRowResponse `json:"rows"`
}

// BalanceResponse is a point-in-time account balance.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      time.Time       `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToLedgerRowResponse converts a domain.LedgerRow to LedgerRowResponse.
func ToLedgerRowResponse(r *domain.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		EntryID:        r.Line.EntryID,
		EntryDate:      r.EntryDate,
		EntryMemo:      r.EntryMemo,
		LineID:         r.Line.LineID,
		DebitAmount:    r.Line.DebitAmount,
		CreditAmount:   r.Line.CreditAmount,
		Description:    r.Line.Description,
		RunningBalance: r.RunningBalance,
	}
}

// ToLedgerResponse converts a sequence of ledger rows for one account.
func ToLedgerResponse(accountID string, rows []domain.LedgerRow) LedgerResponse {
	resp := LedgerResponse{AccountID: accountID, Rows: make([]LedgerRowResponse, len(rows))}
	for i := range rows {
		resp.Rows[i] = ToLedgerRowResponse(&rows[i])
	}
	return resp
}
