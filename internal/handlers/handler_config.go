package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type configHandler struct {
	configService portssvc.AccountingConfigSvc
}

func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.AccountingConfigSvc) {
	h := &configHandler{configService: configService}

	rg.GET("/accounting-config", h.getConfig)
	rg.PUT("/accounting-config", h.updateConfig)
}

// getConfig godoc
// @Summary Get the accounting configuration
// @Description Returns the account mapping used for automatic entries. A tenant that never saved one reads as disabled.
// @Tags accounting-config
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.AccountingConfigResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounting-config [get]
func (h *configHandler) getConfig(c *gin.Context) {
	cfg, err := h.configService.GetConfig(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		respondError(c, err, "retrieve accounting config")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountingConfigResponse(cfg))
}

// updateConfig godoc
// @Summary Replace the accounting configuration
// @Description Replaces the whole configuration in one step. Every referenced account must exist and be postable. Requires the admin role.
// @Tags accounting-config
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   config body dto.UpdateAccountingConfigRequest true "Configuration"
// @Success 200 {object} dto.AccountingConfigResponse
// @Failure 400 {object} map[string]interface{} "Invalid account reference"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Version mismatch"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounting-config [put]
func (h *configHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.UpdateAccountingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cfg, err := h.configService.UpdateConfig(c.Request.Context(), tenantID, req.ToDomain(tenantID), req.ExpectedVersion, userID)
	if err != nil {
		respondError(c, err, "update accounting config")
		return
	}

	logger.Info("Accounting config updated", slog.Int64("version", cfg.Version), slog.Bool("enabled", cfg.Enabled))
	c.JSON(http.StatusOK, dto.ToAccountingConfigResponse(cfg))
}
