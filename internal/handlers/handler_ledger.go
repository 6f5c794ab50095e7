package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/export"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
	exponent      int
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, exponent int) {
	h := &ledgerHandler{ledgerService: ledgerService, exponent: exponent}

	rg.GET("/ledger/:code", h.getLedger)
}

// ledgerQuery holds the period of a ledger request.
type ledgerQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// getLedger godoc
// @Summary General ledger of an account
// @Description Opening balance, movements with running balances and closing balance over [from, to]. Header accounts include their descendants.
// @Tags ledger
// @Produce  json
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   tenant_id path string true "Tenant ID"
// @Param   code path string true "Account code"
// @Param   from query string true "First date (YYYY-MM-DD)"
// @Param   to query string true "Last date (YYYY-MM-DD)"
// @Param   format query string false "Set to xlsx for a spreadsheet"
// @Success 200 {object} dto.LedgerViewResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/ledger/{code} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	var q ledgerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, "query parameters", err)
		return
	}
	from, _ := time.Parse(domain.DateLayout, q.From)
	to, _ := time.Parse(domain.DateLayout, q.To)
	code := c.Param("code")

	view, err := h.ledgerService.Project(c.Request.Context(), c.Param("tenant_id"), code, from, to)
	if err != nil {
		respondError(c, err, "project ledger")
		return
	}

	if wantsSpreadsheet(c) {
		sendSpreadsheet(c, "ledger-"+code+".xlsx", func(buf *bytes.Buffer) error {
			return export.WriteLedger(buf, view, h.exponent)
		}, "export ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerViewResponse(view, h.exponent))
}
