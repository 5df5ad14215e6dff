package dto

import (
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest is one proposed debit or credit line of a draft entry.
// Exactly one of debitAmount/creditAmount must be positive.
type CreateLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// CreateEntryRequest defines the payload for creating a draft journal entry.
// Drafts may be unbalanced; balance is enforced at posting time.
type CreateEntryRequest struct {
	EntryDate       time.Time           `json:"entryDate" binding:"required"`
	Memo            string              `json:"memo" binding:"required"`
	CurrencyCode    string              `json:"currencyCode" binding:"omitempty,len=3"`
	SourceReference string              `json:"sourceReference"`
	Lines           []CreateLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// VoidEntryRequest defines the payload for voiding an entry.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	LineOrdinal  int             `json:"lineOrdinal"`
	Description  string          `json:"description,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID           string         `json:"entryID"`
	CompanyID         string         `json:"companyID"`
	EntryDate         time.Time      `json:"entryDate"`
	Memo              string         `json:"memo"`
	CurrencyCode      string         `json:"currencyCode,omitempty"`
	Status            string         `json:"status"`
	SourceReference   string         `json:"sourceReference,omitempty"`
	ReversalOfEntryID *string        `json:"reversalOfEntryID,omitempty"`
	ReversedByEntryID *string        `json:"reversedByEntryID,omitempty"`
	VoidReason        string         `json:"voidReason,omitempty"`
	Lines             []LineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	CreatedBy         string         `json:"createdBy"`
}

// ListEntriesParams holds parameters for listing entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is a token-paginated page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse.
func ToLineResponse(l *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
		LineOrdinal:  l.LineOrdinal,
		Description:  l.Description,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:           e.EntryID,
		CompanyID:         e.CompanyID,
		EntryDate:         e.EntryDate,
		Memo:              e.Memo,
		CurrencyCode:      e.CurrencyCode,
		Status:            string(e.Status),
		SourceReference:   e.SourceReference,
		ReversalOfEntryID: e.ReversalOfEntryID,
		ReversedByEntryID: e.ReversedByEntryID,
		VoidReason:        e.VoidReason,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLineResponse(&e.Lines[i])
		}
	}
	return resp
}
