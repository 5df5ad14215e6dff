package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/middleware"
	"github.com/meridianpress/ledger/internal/utils/accounting"
)

// ledgerService computes per-account ledgers and point-in-time balances from
// the effective (POSTED/RECONCILED) line set. Balances are folded at query
// time; no cached balance column is consulted, so a read can never drift from
// the lines it is derived from.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
	accountSvc portssvc.AccountSvcFacade
}

// NewLedgerService creates a new balance and ledger query service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, accountSvc portssvc.AccountSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		accountSvc: accountSvc,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AccountLedger returns the ordered ledger of one account with a running
// balance per line. The balance starts at zero for the window and accumulates
// +amount for lines on the account's normal side, -amount otherwise.
func (s *ledgerService) AccountLedger(ctx context.Context, companyID string, accountID string, from, to *time.Time) ([]domain.LedgerRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountSvc.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ledgerRepo.FindEffectiveLines(ctx, companyID, accountID, from, to)
	if err != nil {
		logger.Error("Failed to fetch ledger lines", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch ledger lines: %w", err)
	}

	running := decimal.Zero
	for i := range rows {
		running = running.Add(accounting.SignedAmount(rows[i].Line, account.NormalSide))
		rows[i].RunningBalance = running
	}

	logger.Debug("Account ledger computed", slog.String("account_id", accountID), slog.Int("row_count", len(rows)))
	return rows, nil
}

// AccountBalance returns the account balance at or before asOf: the last
// running balance of the ledger up to that date, or zero when no effective
// lines exist.
func (s *ledgerService) AccountBalance(ctx context.Context, companyID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	rows, err := s.AccountLedger(ctx, companyID, accountID, nil, &asOf)
	if err != nil {
		return decimal.Zero, err
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return rows[len(rows)-1].RunningBalance, nil
}
