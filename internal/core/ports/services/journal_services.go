package services

import (
	"context"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/dto"
)

// JournalSvcFacade defines the ledger store operations: entry creation and the
// full status lifecycle. Callers are pre-authorized; the actor descriptor is
// used only to scope the company and stamp audit fields.
type JournalSvcFacade interface {
	// CreateDraftEntry creates an entry in DRAFT together with its proposed
	// lines. Accounts are validated (existing, active, same company) but the
	// balance invariant is not yet enforced, enabling staged construction.
	CreateDraftEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)

	// PostEntry recomputes debit/credit totals over the entry's current lines
	// and transitions DRAFT -> POSTED. Fails with ErrUnbalanced when totals
	// differ and ErrInvalidTransition when the entry is not DRAFT (a second
	// post of the same entry therefore fails).
	PostEntry(ctx context.Context, companyID string, entryID string, actor domain.Actor) (*domain.JournalEntry, error)

	// ReconcileEntry marks a POSTED entry as externally confirmed.
	ReconcileEntry(ctx context.Context, companyID string, entryID string, actor domain.Actor) (*domain.JournalEntry, error)

	// VoidEntry voids an entry from DRAFT or POSTED. Voiding a POSTED entry
	// additionally records a mirrored reversal entry (debits and credits
	// swapped) in the same atomic unit, so the pair nets to zero everywhere.
	VoidEntry(ctx context.Context, companyID string, entryID string, reason string, actor domain.Actor) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines, company-scoped.
	GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a token-paginated list of a company's entries.
	ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
