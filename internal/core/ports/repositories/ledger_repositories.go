package repositories

import (
	"context"
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// LedgerRepository defines the read-side queries the balance engine is built
// on. Only POSTED and RECONCILED lines are visible through it; balances are
// always computed from the line set at query time, never from a cached column.
type LedgerRepository interface {
	// FindEffectiveLines retrieves an account's POSTED/RECONCILED ledger rows
	// ordered by (entry_date, entry_id, line_ordinal) ascending. from and to
	// are inclusive date bounds; nil means unbounded. RunningBalance on the
	// returned rows is left zero for the caller to fold.
	FindEffectiveLines(ctx context.Context, companyID string, accountID string, from, to *time.Time) ([]domain.LedgerRow, error)
}
