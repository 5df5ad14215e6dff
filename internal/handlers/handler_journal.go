package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/dto"
	"github.com/meridianpress/ledger/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries and their
// status lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers journal entry routes inside a company scope.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/entries")
	{
		entries.POST("", middleware.RequireOperation(middleware.OpDraftEntry), h.createDraftEntry)
		entries.GET("", middleware.RequireOperation(middleware.OpView), h.listEntries)
		entries.GET("/:entry_id", middleware.RequireOperation(middleware.OpView), h.getEntry)
		entries.POST("/:entry_id/post", middleware.RequireOperation(middleware.OpPostEntry), h.postEntry)
		entries.POST("/:entry_id/reconcile", middleware.RequireOperation(middleware.OpReconcileEntry), h.reconcileEntry)
		entries.POST("/:entry_id/void", middleware.RequireOperation(middleware.OpVoidEntry), h.voidEntry)
	}
}

func (h *journalHandler) createDraftEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, actor, ok := scopedCompany(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDraftEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateDraftEntry(c.Request.Context(), companyID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			// One of the referenced accounts does not exist in this company.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create draft entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	logger.Info("Draft entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), companyID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := scopedCompany(c)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.journalService.ListEntries(c.Request.Context(), companyID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *journalHandler) postEntry(c *gin.Context) {
	h.transition(c, "post", h.journalService.PostEntry)
}

func (h *journalHandler) reconcileEntry(c *gin.Context) {
	h.transition(c, "reconcile", h.journalService.ReconcileEntry)
}

func (h *journalHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, actor, ok := scopedCompany(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VoidEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.VoidEntry(c.Request.Context(), companyID, entryID, req.Reason, actor)
	if err != nil {
		h.writeTransitionError(c, "void", err)
		return
	}

	logger.Info("Entry voided successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// transition runs one of the single-shot status transitions that take no
// request body and share the same error mapping.
func (h *journalHandler) transition(c *gin.Context, action string, fn func(context.Context, string, string, domain.Actor) (*domain.JournalEntry, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, actor, ok := scopedCompany(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	entry, err := fn(c.Request.Context(), companyID, entryID, actor)
	if err != nil {
		h.writeTransitionError(c, action, err)
		return
	}

	logger.Info("Entry transition applied", slog.String("entry_id", entryID), slog.String("action", action))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) writeTransitionError(c *gin.Context, action string, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case errors.Is(err, apperrors.ErrUnbalanced):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to apply entry transition", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " entry"})
	}
}
