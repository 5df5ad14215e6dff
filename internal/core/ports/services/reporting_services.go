package services

import (
	"context"
	"time"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// ReportingSvcFacade defines the derived financial statements.
type ReportingSvcFacade interface {
	// ProfitAndLoss sums revenue and expense account nets over the inclusive
	// [start, end] window.
	ProfitAndLoss(ctx context.Context, companyID string, start, end time.Time) (*domain.PAndLReport, error)

	// BalanceSheet groups per-account balances as of a date. Returns
	// ErrImbalanced when total assets differ from total liabilities and
	// equity, which signals upstream data corruption rather than a bad request.
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// MonthlyMetrics produces monthCount trailing calendar-month P&L
	// snapshots, oldest first.
	MonthlyMetrics(ctx context.Context, companyID string, monthCount int) ([]domain.MonthlyMetric, error)
}
