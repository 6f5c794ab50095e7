package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const defaultEntryPageSize = 100

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	exponent       int
}

func newJournalHandler(journalService portssvc.JournalSvcFacade, exponent int) *journalHandler {
	return &journalHandler{journalService: journalService, exponent: exponent}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, exponent int) {
	h := newJournalHandler(journalService, exponent)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.submitEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.POST("/:entry_id/reverse", h.reverseEntry)
	}
}

// submitEntry godoc
// @Summary Post a manual journal entry
// @Description Validates and posts a manual entry. Amounts are integers in minor units. Requires the accountant role.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Entry refused"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to post entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/entries [post]
func (h *journalHandler) submitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	entry, err := h.journalService.Submit(c.Request.Context(), tenantID, req.ToDomain(tenantID), userID)
	if err != nil {
		respondError(c, err, "post entry")
		return
	}

	logger.Info("Manual entry posted", slog.String("entry_id", entry.ID), slog.Int64("entry_number", entry.Number))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry, h.exponent))
}

// listEntries godoc
// @Summary List posted entries
// @Description Lists entries in (date, number) order with optional filters and token pagination
// @Tags entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   from query string false "First date (YYYY-MM-DD)"
// @Param   to query string false "Last date (YYYY-MM-DD)"
// @Param   journalCode query string false "Journal code"
// @Param   origin query string false "AUTOMATIC or MANUAL"
// @Param   limit query int false "Page size" default(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	filter := domain.EntryFilter{
		JournalCode: params.JournalCode,
		Origin:      domain.EntryOrigin(params.Origin),
		Limit:       params.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultEntryPageSize
	}
	if params.From != "" {
		from, _ := time.Parse(domain.DateLayout, params.From)
		filter.DateFrom = &from
	}
	if params.To != "" {
		to, _ := time.Parse(domain.DateLayout, params.To)
		filter.DateTo = &to
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(params.NextToken)
		if err != nil {
			bindError(c, "nextToken", err)
			return
		}
		filter.After = &cursor
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), c.Param("tenant_id"), filter)
	if err != nil {
		respondError(c, err, "list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, pagination.NextCursor(entries, filter.Limit), h.exponent))
}

// getEntry godoc
// @Summary Get a posted entry
// @Tags entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/entries/{entry_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("tenant_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, err, "retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry, h.exponent))
}

// reverseEntry godoc
// @Summary Reverse a posted entry
// @Description Posts a new entry with every line's debit and credit swapped. The original entry is left untouched.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Entry ID"
// @Param   reversal body dto.ReverseJournalEntryRequest false "Optional date and label"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already reversed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/entries/{entry_id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseJournalEntryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, "request format", err)
			return
		}
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse(domain.DateLayout, req.Date)
	}

	reversal, err := h.journalService.Reverse(c.Request.Context(), c.Param("tenant_id"), c.Param("entry_id"), date, req.Label, userID)
	if err != nil {
		respondError(c, err, "reverse entry")
		return
	}

	logger.Info("Entry reversed", slog.String("entry_id", c.Param("entry_id")), slog.String("reversal_id", reversal.ID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal, h.exponent))
}
