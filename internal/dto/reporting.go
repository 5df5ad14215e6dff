package dto

import "time"

// PAndLParams holds the reporting window for a profit and loss request.
type PAndLParams struct {
	Start time.Time `form:"start" time_format:"2006-01-02" binding:"required"`
	End   time.Time `form:"end" time_format:"2006-01-02" binding:"required"`
}

// BalanceSheetParams holds the as-of date for a balance sheet request.
type BalanceSheetParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" binding:"required"`
}

// MonthlyMetricsParams holds the trailing month count for monthly metrics.
type MonthlyMetricsParams struct {
	Months int `form:"months" binding:"omitempty,min=1,max=36"`
}
