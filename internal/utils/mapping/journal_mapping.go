package mapping

import (
	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/models"
)

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelEntry converts a domain journal entry to its database row shape.
func ToModelEntry(e domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           e.EntryID,
		CompanyID:         e.CompanyID,
		EntryDate:         e.EntryDate,
		Memo:              e.Memo,
		CurrencyCode:      e.CurrencyCode,
		Status:            string(e.Status),
		SourceReference:   strPtrOrNil(e.SourceReference),
		ReversalOfEntryID: e.ReversalOfEntryID,
		ReversedByEntryID: e.ReversedByEntryID,
		VoidReason:        strPtrOrNil(e.VoidReason),
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
		LastUpdatedAt:     e.LastUpdatedAt,
		LastUpdatedBy:     e.LastUpdatedBy,
	}
}

// ToDomainEntry converts a database row to the domain journal entry.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		CompanyID:         m.CompanyID,
		EntryDate:         m.EntryDate,
		Memo:              m.Memo,
		CurrencyCode:      m.CurrencyCode,
		Status:            domain.EntryStatus(m.Status),
		SourceReference:   strOrEmpty(m.SourceReference),
		ReversalOfEntryID: m.ReversalOfEntryID,
		ReversedByEntryID: m.ReversedByEntryID,
		VoidReason:        strOrEmpty(m.VoidReason),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelLine converts a domain journal line to its database row shape.
func ToModelLine(l domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        l.LineID,
		EntryID:       l.EntryID,
		AccountID:     l.AccountID,
		DebitAmount:   l.DebitAmount,
		CreditAmount:  l.CreditAmount,
		LineOrdinal:   l.LineOrdinal,
		Description:   l.Description,
		CreatedAt:     l.CreatedAt,
		CreatedBy:     l.CreatedBy,
		LastUpdatedAt: l.LastUpdatedAt,
		LastUpdatedBy: l.LastUpdatedBy,
	}
}

// ToDomainLine converts a database row to the domain journal line.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		LineOrdinal:  m.LineOrdinal,
		Description:  m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
