package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/dto"
	"github.com/meridianpress/ledger/internal/middleware"
	"github.com/meridianpress/ledger/internal/utils/accounting"
)

// journalService implements the ledger store: draft entry creation and the
// post/reconcile/void lifecycle.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	publisher   portssvc.TransitionPublisher
}

// NewJournalService creates a new journal service. A nil publisher falls back
// to the slog-based transition publisher.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, publisher portssvc.TransitionPublisher) portssvc.JournalSvcFacade {
	if publisher == nil {
		publisher = NewLogTransitionPublisher()
	}
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		publisher:   publisher,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// fetchScopedEntry retrieves an entry and enforces tenant isolation: an entry
// belonging to another company is reported as not found.
func (s *journalService) fetchScopedEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) emit(ctx context.Context, entry *domain.JournalEntry, from, to domain.EntryStatus, actor domain.Actor, at time.Time) {
	s.publisher.PublishTransition(ctx, domain.TransitionEvent{
		EntryID:    entry.EntryID,
		CompanyID:  entry.CompanyID,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor.UserID,
		Timestamp:  at,
	})
}

// CreateDraftEntry creates a DRAFT entry with its proposed lines after
// validating every referenced account. Balance is deliberately not enforced
// here: drafts may be built up in stages and only posting checks the
// double-entry invariant.
func (s *journalService) CreateDraftEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: entry requires at least one line", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		line := domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    lineReq.AccountID,
			DebitAmount:  lineReq.DebitAmount,
			CreditAmount: lineReq.CreditAmount,
			LineOrdinal:  i + 1,
			Description:  lineReq.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if !line.Validate() {
			return nil, fmt.Errorf("%w: line %d must have exactly one positive side", apperrors.ErrValidation, i+1)
		}
		lines[i] = line
		accountIDs = append(accountIDs, lineReq.AccountID)
	}

	uniqueAccountIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, companyID, uniqueAccountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range uniqueAccountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	entry := domain.JournalEntry{
		EntryID:         entryID,
		CompanyID:       companyID,
		EntryDate:       req.EntryDate,
		Memo:            req.Memo,
		CurrencyCode:    req.CurrencyCode,
		Status:          domain.Draft,
		SourceReference: req.SourceReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save draft entry", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save draft entry: %w", err)
	}

	logger.Info("Draft entry created", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	entry.Lines = lines
	return &entry, nil
}

// PostEntry transitions a DRAFT entry to POSTED after recomputing the balance
// over its current lines. A second post of the same entry fails with
// ErrInvalidTransition because the status precondition no longer holds.
func (s *journalService) PostEntry(ctx context.Context, companyID string, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	entry, err := s.fetchScopedEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.Posted) {
		return nil, fmt.Errorf("%w: cannot post entry in status %s", apperrors.ErrInvalidTransition, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnbalanced, err)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Draft, domain.Posted, "", actor.UserID, now); err != nil {
		logger.Warn("Failed to post entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.UserID
	entry.Lines = lines

	s.emit(ctx, entry, domain.Draft, domain.Posted, actor, now)
	logger.Info("Entry posted", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	return entry, nil
}

// ReconcileEntry marks a POSTED entry as externally confirmed. It never alters
// line amounts.
func (s *journalService) ReconcileEntry(ctx context.Context, companyID string, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	entry, err := s.fetchScopedEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.Reconciled) {
		return nil, fmt.Errorf("%w: cannot reconcile entry in status %s", apperrors.ErrInvalidTransition, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Posted, domain.Reconciled, "", actor.UserID, now); err != nil {
		return nil, err
	}

	entry.Status = domain.Reconciled
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.UserID

	s.emit(ctx, entry, domain.Posted, domain.Reconciled, actor, now)
	logger.Info("Entry reconciled", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	return entry, nil
}

// VoidEntry voids an entry from DRAFT or POSTED. Voiding a POSTED entry also
// records a mirrored reversal entry in the same atomic unit: the reversal's
// lines equal the original's with debit and credit swapped, so the pair nets
// to zero on every touched account. Posted entries are never deleted.
func (s *journalService) VoidEntry(ctx context.Context, companyID string, entryID string, reason string, actor domain.Actor) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	entry, err := s.fetchScopedEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.Void) {
		return nil, fmt.Errorf("%w: cannot void entry in status %s", apperrors.ErrInvalidTransition, entry.Status)
	}

	now := time.Now().UTC()
	fromStatus := entry.Status

	switch fromStatus {
	case domain.Draft:
		if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Draft, domain.Void, reason, actor.UserID, now); err != nil {
			return nil, err
		}

	case domain.Posted:
		originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load entry lines: %w", err)
		}

		reversalID := uuid.NewString()
		reversalLines := make([]domain.JournalLine, len(originalLines))
		for i, orig := range originalLines {
			reversalLines[i] = domain.JournalLine{
				LineID:       uuid.NewString(),
				EntryID:      reversalID,
				AccountID:    orig.AccountID,
				DebitAmount:  orig.CreditAmount,
				CreditAmount: orig.DebitAmount,
				LineOrdinal:  orig.LineOrdinal,
				Description:  orig.Description,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     actor.UserID,
					LastUpdatedAt: now,
					LastUpdatedBy: actor.UserID,
				},
			}
		}

		// The reversal is recorded terminal-VOID alongside the voided
		// original: the pair is excluded from balance queries as a unit, while
		// consumers that sum raw lines see them cancel exactly.
		reversal := domain.JournalEntry{
			EntryID:           reversalID,
			CompanyID:         companyID,
			EntryDate:         entry.EntryDate,
			Memo:              fmt.Sprintf("Reversal of: %s", entry.Memo),
			CurrencyCode:      entry.CurrencyCode,
			Status:            domain.Void,
			SourceReference:   entry.SourceReference,
			ReversalOfEntryID: &entry.EntryID,
			VoidReason:        reason,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}

		if err := s.journalRepo.VoidWithReversal(ctx, entryID, reason, reversal, reversalLines); err != nil {
			logger.Error("Failed to void posted entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			return nil, err
		}
		entry.ReversedByEntryID = &reversalID
	}

	entry.Status = domain.Void
	entry.VoidReason = reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.UserID

	s.emit(ctx, entry, fromStatus, domain.Void, actor, now)
	logger.Info("Entry voided", slog.String("entry_id", entryID), slog.String("from_status", string(fromStatus)))
	return entry, nil
}

// GetEntryByID retrieves an entry with its lines, company-scoped.
func (s *journalService) GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.fetchScopedEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a token-paginated list of a company's entries.
func (s *journalService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
