package repositories

import (
	"context"
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries and lines.
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry (without lines).
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of an entry ordered by line ordinal.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntriesByCompany retrieves a token-paginated list of entries for a
	// company, newest first. Returns the next page token when more rows exist.
	ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entries.
//
// Every method is atomic: the entry and all its lines change together inside a
// single database transaction, or nothing changes. Status updates carry the
// expected current status as a precondition so concurrent transitions on the
// same entry serialize and the loser fails with ErrInvalidTransition.
type JournalEntryWriter interface {
	// SaveEntry persists a new entry together with all of its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateEntryStatus transitions an entry from the expected status to the
	// target status. Returns apperrors.ErrInvalidTransition when the entry is
	// no longer in the expected status.
	UpdateEntryStatus(ctx context.Context, entryID string, from, to domain.EntryStatus, voidReason string, updatedBy string, now time.Time) error

	// VoidWithReversal atomically voids a posted entry and persists its
	// mirrored reversal entry with all reversal lines, linking the two.
	VoidWithReversal(ctx context.Context, originalEntryID string, voidReason string, reversal domain.JournalEntry, reversalLines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
