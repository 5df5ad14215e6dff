package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/middleware"
)

// currentEarningsLabel names the synthetic equity row carrying the net income
// accumulated by revenue and expense accounts as of the report date.
const currentEarningsLabel = "Current period earnings"

// reportingService derives financial statements from account activity.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ProfitAndLoss sums revenue and expense account nets over [start, end].
// Revenue accounts are credit-normal so increases are credits; expense
// accounts are debit-normal.
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, start, end time.Time) (*domain.PAndLReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	activity, err := s.reportingRepo.GetAccountActivity(ctx, companyID, &start, &end)
	if err != nil {
		logger.Error("Failed to retrieve account activity for P&L",
			slog.String("company_id", companyID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	report := &domain.PAndLReport{
		Revenue:      []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		RevenueTotal: decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}

	for _, act := range activity {
		amount := domain.AccountAmount{AccountID: act.AccountID, Name: act.Name, NetAmount: act.Net()}
		switch act.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, amount)
			report.RevenueTotal = report.RevenueTotal.Add(amount.NetAmount)
		case domain.Expense:
			report.Expenses = append(report.Expenses, amount)
			report.ExpenseTotal = report.ExpenseTotal.Add(amount.NetAmount)
		}
	}
	report.NetIncome = report.RevenueTotal.Sub(report.ExpenseTotal)

	logger.Debug("Profit and loss generated",
		slog.String("company_id", companyID),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}

// BalanceSheet groups per-account balances as of a date. Net income earned by
// revenue and expense accounts is folded into equity as a synthetic current
// earnings row, so for a healthy ledger total assets always equal total
// liabilities and equity. A mismatch means the double-entry invariant was
// violated at some earlier write and is escalated as ErrImbalanced.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	activity, err := s.reportingRepo.GetAccountActivity(ctx, companyID, nil, &asOf)
	if err != nil {
		logger.Error("Failed to retrieve account activity for balance sheet",
			slog.String("company_id", companyID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	report := &domain.BalanceSheetReport{
		AsOf:        asOf,
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}
	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero
	totalEquity := decimal.Zero
	currentEarnings := decimal.Zero

	for _, act := range activity {
		amount := domain.AccountAmount{AccountID: act.AccountID, Name: act.Name, NetAmount: act.Net()}
		switch act.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
			totalAssets = totalAssets.Add(amount.NetAmount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
			totalLiabilities = totalLiabilities.Add(amount.NetAmount)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
			totalEquity = totalEquity.Add(amount.NetAmount)
		case domain.Revenue:
			currentEarnings = currentEarnings.Add(amount.NetAmount)
		case domain.Expense:
			currentEarnings = currentEarnings.Sub(amount.NetAmount)
		}
	}

	if !currentEarnings.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{Name: currentEarningsLabel, NetAmount: currentEarnings})
		totalEquity = totalEquity.Add(currentEarnings)
	}

	report.TotalAssets = totalAssets
	report.TotalLiabilitiesAndEquity = totalLiabilities.Add(totalEquity)

	// Decimal arithmetic leaves no rounding drift, so any difference here is
	// corruption upstream, not noise.
	if !report.TotalAssets.Equal(report.TotalLiabilitiesAndEquity) {
		logger.Error("Balance sheet does not balance",
			slog.String("company_id", companyID),
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", report.TotalLiabilitiesAndEquity.String()))
		return nil, apperrors.ErrImbalanced
	}

	return report, nil
}

// MonthlyMetrics produces monthCount trailing calendar-month P&L snapshots,
// oldest first, each computed independently over [monthStart, nextMonthStart).
func (s *reportingService) MonthlyMetrics(ctx context.Context, companyID string, monthCount int) ([]domain.MonthlyMetric, error) {
	if monthCount <= 0 {
		monthCount = 12
	}

	now := time.Now().UTC()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	metrics := make([]domain.MonthlyMetric, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		start := currentMonthStart.AddDate(0, -i, 0)
		next := start.AddDate(0, 1, 0)

		// Entry dates are day-granular, so the inclusive end of the month is
		// the day before the next month's start.
		pnl, err := s.ProfitAndLoss(ctx, companyID, start, next.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}

		metrics = append(metrics, domain.MonthlyMetric{
			Month:        start.Format("2006-01"),
			Start:        start,
			End:          next,
			RevenueTotal: pnl.RevenueTotal,
			ExpenseTotal: pnl.ExpenseTotal,
			NetIncome:    pnl.NetIncome,
		})
	}
	return metrics, nil
}
