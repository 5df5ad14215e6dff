package services

import (
	"context"
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines the balance and ledger query engine. All operations
// are read-only, see only POSTED/RECONCILED lines, and compute balances from
// the line set at query time.
type LedgerSvcFacade interface {
	// AccountLedger returns the ordered ledger of one account with a running
	// balance per line. from/to are optional inclusive date bounds; the
	// running balance starts at zero for the window.
	AccountLedger(ctx context.Context, companyID string, accountID string, from, to *time.Time) ([]domain.LedgerRow, error)

	// AccountBalance returns the account balance at or before asOf, zero when
	// no effective lines exist.
	AccountBalance(ctx context.Context, companyID string, accountID string, asOf time.Time) (decimal.Decimal, error)
}
