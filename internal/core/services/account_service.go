package services

import (
	"context"
	"errors"
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
)

// accountService maintains the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account registry service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// validateParent checks that a proposed parent exists, is active, and belongs
// to the same company. Returns the normalized parent ID ("" for root).
func (s *accountService) validateParent(ctx context.Context, companyID string, parentAccountID *string) (string, error) {
	if parentAccountID == nil || *parentAccountID == "" {
		return "", nil
	}
	parent, err := s.accountRepo.FindAccountByID(ctx, *parentAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: parent account %s not found", apperrors.ErrInvalidParent, *parentAccountID)
		}
		return "", fmt.Errorf("failed to look up parent account: %w", err)
	}
	if parent.CompanyID != companyID {
		return "", fmt.Errorf("%w: parent account belongs to a different company", apperrors.ErrInvalidParent)
	}
	if !parent.IsActive {
		return "", fmt.Errorf("%w: parent account %s is inactive", apperrors.ErrInvalidParent, parent.AccountID)
	}
	return parent.AccountID, nil
}

// checkNoCycle walks the parent chain from candidateParentID and fails if it
// reaches accountID, which would close a loop in the account tree.
func (s *accountService) checkNoCycle(ctx context.Context, accountID string, candidateParentID string) error {
	seen := make(map[string]struct{})
	current := candidateParentID
	for current != "" {
		if current == accountID {
			return fmt.Errorf("%w: would create a cycle in the account tree", apperrors.ErrInvalidParent)
		}
		if _, ok := seen[current]; ok {
			// Existing data already contains a loop; refuse to extend it.
			return fmt.Errorf("%w: account tree contains a cycle at %s", apperrors.ErrInvalidParent, current)
		}
		seen[current] = struct{}{}
		ancestor, err := s.accountRepo.FindAccountByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil // broken chain, not a cycle
			}
			return fmt.Errorf("failed to walk account ancestry: %w", err)
		}
		current = ancestor.ParentAccountID
	}
	return nil
}

// checkSiblingName enforces name uniqueness among active siblings.
func (s *accountService) checkSiblingName(ctx context.Context, companyID, parentID, name, excludeAccountID string) error {
	sibling, err := s.accountRepo.FindActiveSiblingByName(ctx, companyID, parentID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check sibling names: %w", err)
	}
	if sibling != nil && sibling.AccountID != excludeAccountID {
		return fmt.Errorf("%w: %q already exists under the same parent", apperrors.ErrDuplicateName, name)
	}
	return nil
}

// CreateAccount persists a new account in the company's chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	parentID, err := s.validateParent(ctx, companyID, req.ParentAccountID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSiblingName(ctx, companyID, parentID, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		CompanyID:       companyID,
		Name:            req.Name,
		AccountType:     accountType,
		NormalSide:      domain.NormalSideFor(accountType),
		CurrencyCode:    req.CurrencyCode,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("company_id", companyID))
	return &account, nil
}

// GetAccountByID retrieves an account, enforcing tenant isolation.
func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.CompanyID != companyID {
		// Obscure existence of other tenants' accounts.
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// GetAccountByIDs retrieves multiple accounts of one company by their IDs.
func (s *accountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for id, acc := range accountsMap {
		if acc.CompanyID != companyID {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accountsMap, nil
}

// ListAccounts retrieves a paginated list of accounts for a company.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = 50
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount updates an account's mutable details.
func (s *accountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && *req.Name != account.Name {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.ParentAccountID != nil {
		parentID, err := s.validateParent(ctx, companyID, req.ParentAccountID)
		if err != nil {
			return nil, err
		}
		if parentID == accountID {
			return nil, fmt.Errorf("%w: account cannot be its own parent", apperrors.ErrInvalidParent)
		}
		if err := s.checkNoCycle(ctx, accountID, parentID); err != nil {
			return nil, err
		}
		account.ParentAccountID = parentID
		updated = true
	}

	if !updated {
		return account, nil
	}

	if err := s.checkSiblingName(ctx, companyID, account.ParentAccountID, account.Name, accountID); err != nil {
		return nil, err
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actor.UserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-disables an account; historical lines are retained.
func (s *accountService) DeactivateAccount(ctx context.Context, companyID string, accountID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.CompanyID != companyID {
		return apperrors.ErrForbidden
	}

	if _, err := s.GetAccountByID(ctx, companyID, accountID); err != nil {
		return err
	}

	hasChildren, err := s.accountRepo.HasActiveChildren(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to check child accounts: %w", err)
	}
	if hasChildren {
		return fmt.Errorf("%w: deactivate or reparent children first", apperrors.ErrHasChildren)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor.UserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
