package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type eventHandler struct {
	eventService portssvc.EventSvc
	exponent     int
}

// registerEventRoutes mounts the business event intake. Source modules post as an accountant.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvc, authorizer portssvc.TenantAuthorizerSvc, exponent int) {
	h := &eventHandler{eventService: eventService, exponent: exponent}

	rg.POST("/events", tenantAccess(authorizer, domain.RoleAccountant), h.processEvent)
}

// processEvent godoc
// @Summary Process a business event
// @Description Generates and posts the automatic entry for an invoice or payment. Replaying a document returns the entry already posted.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   event body dto.BusinessEventRequest true "Business event"
// @Success 200 {object} dto.EventResultResponse "SUPPRESSED or ALREADY_POSTED"
// @Success 201 {object} dto.EventResultResponse "POSTED"
// @Failure 400 {object} map[string]string "Malformed event"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events [post]
func (h *eventHandler) processEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BusinessEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "event", err)
		return
	}
	logger = logger.With(slog.String("event_type", string(req.Type)), slog.String("document_ref", req.DocumentRef))

	result, err := h.eventService.Process(c.Request.Context(), c.Param("tenant_id"), req.ToDomain())
	if err != nil {
		respondError(c, err, "process event")
		return
	}

	logger.Info("Business event processed", slog.String("outcome", string(result.Outcome)))
	status := http.StatusOK
	if result.Outcome == domain.OutcomePosted {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToEventResultResponse(result, h.exponent))
}
