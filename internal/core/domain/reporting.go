package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of an account ledger together with the running balance
// after that line. The running balance accumulates +amount for lines on the
// account's normal side and -amount otherwise.
type LedgerRow struct {
	Line           JournalLine     `json:"line"`
	EntryDate      time.Time       `json:"entryDate"`
	EntryMemo      string          `json:"entryMemo"`
	EntryStatus    EntryStatus     `json:"entryStatus"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountActivity aggregates posted debit/credit totals for one account over a
// reporting window. Reports derive per-account nets from it using the
// account's normal side.
type AccountActivity struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// Net returns the account's net movement on its normal side.
func (a AccountActivity) Net() decimal.Decimal {
	if NormalSideFor(a.AccountType) == DebitSide {
		return a.DebitTotal.Sub(a.CreditTotal)
	}
	return a.CreditTotal.Sub(a.DebitTotal)
}

// AccountAmount is an account with its net amount, as rendered in reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport is a profit and loss statement over a window.
type PAndLReport struct {
	Revenue      []AccountAmount `json:"revenue"`
	Expenses     []AccountAmount `json:"expenses"`
	RevenueTotal decimal.Decimal `json:"revenueTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport is a point-in-time statement of financial position.
// Equity includes a synthetic current-earnings row so that a healthy ledger
// always satisfies TotalAssets == TotalLiabilitiesAndEquity.
type BalanceSheetReport struct {
	AsOf                      time.Time       `json:"asOf"`
	Assets                    []AccountAmount `json:"assets"`
	Liabilities               []AccountAmount `json:"liabilities"`
	Equity                    []AccountAmount `json:"equity"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// MonthlyMetric is one trailing calendar-month P&L snapshot.
type MonthlyMetric struct {
	Month        string          `json:"month"` // YYYY-MM
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"` // exclusive
	RevenueTotal decimal.Decimal `json:"revenueTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}
