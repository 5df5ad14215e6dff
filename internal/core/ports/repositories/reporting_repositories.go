package repositories

import (
	"context"
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// ReportingRepository defines the aggregate queries reports are derived from.
type ReportingRepository interface {
	// GetAccountActivity aggregates POSTED/RECONCILED debit and credit totals
	// per account for a company. from and to are inclusive date bounds; nil
	// means unbounded on that side. Accounts with no activity in the window
	// are omitted.
	GetAccountActivity(ctx context.Context, companyID string, from, to *time.Time) ([]domain.AccountActivity, error)
}
