package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meridianpress/ledger/internal/apperrors"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/dto"
	"github.com/meridianpress/ledger/internal/middleware"
)

// ledgerHandler handles the read-only balance and ledger queries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers account ledger and balance routes inside a
// company scope.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	accounts := rg.Group("/accounts/:account_id")
	{
		accounts.GET("/ledger", middleware.RequireOperation(middleware.OpView), h.getAccountLedger)
		accounts.GET("/balance", middleware.RequireOperation(middleware.OpView), h.getAccountBalance)
	}
}

func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return
	}

	rows, err := h.ledgerService.AccountLedger(c.Request.Context(), companyID, accountID, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account ledger from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(accountID, rows))
}

func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	balance, err := h.ledgerService.AccountBalance(c.Request.Context(), companyID, accountID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, AsOf: asOf, Balance: balance})
}
