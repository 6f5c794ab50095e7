package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/export"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	exponent         int
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, exponent int) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		exponent:         exponent,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, exponent int) {
	h := newReportingHandler(reportingService, exponent)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date, subtotaled by account class
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Set to xlsx for a spreadsheet"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	// Parse asOf date parameter
	asOfStr := c.DefaultQuery("asOf", time.Now().UTC().Format(domain.DateLayout))
	asOf, err := time.Parse(domain.DateLayout, asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		respondError(c, err, "generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated", slog.String("asOf", asOfStr), slog.Int("row_count", len(tb.Rows)), slog.Bool("balanced", tb.Balanced))
	if wantsSpreadsheet(c) {
		sendSpreadsheet(c, "trial-balance-"+asOfStr+".xlsx", func(buf *bytes.Buffer) error {
			return export.WriteTrialBalance(buf, tb, h.exponent)
		}, "export trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, h.exponent))
}
