package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianpress/ledger/internal/apperrors"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/dto"
	"github.com/meridianpress/ledger/internal/middleware"
)

// reportingHandler handles the derived financial statement endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers financial report routes inside a company scope.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", middleware.RequireOperation(middleware.OpView), h.getProfitAndLoss)
		reports.GET("/balance-sheet", middleware.RequireOperation(middleware.OpView), h.getBalanceSheet)
		reports.GET("/monthly-metrics", middleware.RequireOperation(middleware.OpView), h.getMonthlyMetrics)
	}
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}

	var params dto.PAndLParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Start.After(params.End) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must not be after end"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), companyID, params.Start, params.End)
	if err != nil {
		logger.Error("Failed to build profit and loss report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}

	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), companyID, params.AsOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrImbalanced) {
			// The stored lines no longer satisfy the accounting identity.
			// This is corrupt data, not a bad request.
			logger.Error("Balance sheet does not balance", slog.String("company_id", companyID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build balance sheet report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getMonthlyMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}

	var params dto.MonthlyMetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	metrics, err := h.reportingService.MonthlyMetrics(c.Request.Context(), companyID, params.Months)
	if err != nil {
		logger.Error("Failed to build monthly metrics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": metrics})
}
