package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests on the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:code", h.getAccount)
		accounts.PATCH("/:code", h.updateAccount)
		accounts.POST("/:code/deactivate", h.deactivateAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists every account of the tenant ordered by code, or only the active accounts of one class
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   class query int false "Account class (1-7)"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid class"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var (
		accounts []domain.Account
		err      error
	)
	if raw := c.Query("class"); raw != "" {
		class, convErr := strconv.Atoi(raw)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "class must be a number between 1 and 7"})
			return
		}
		accounts, err = h.accountService.ListByClass(c.Request.Context(), tenantID, class)
	} else {
		accounts, err = h.accountService.ListAccounts(c.Request.Context(), tenantID)
	}
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an account to the tenant's chart. Requires the admin role.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "create account")
		return
	}

	logger.Info("Account created", slog.String("account_code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{code} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.Lookup(c.Request.Context(), c.Param("tenant_id"), c.Param("code"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Rename an account
// @Description Changes the label of an account. Code, class and kind are fixed once created.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   code path string true "Account code"
// @Param   account body dto.UpdateAccountRequest true "New label"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{code} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccountLabel(c.Request.Context(), c.Param("tenant_id"), c.Param("code"), req.Label, userID)
	if err != nil {
		respondError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks an unused account inactive. Accounts referenced by posted lines or an enabled configuration slot stay active.
// @Tags accounts
// @Param   tenant_id path string true "Tenant ID"
// @Param   code path string true "Account code"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account is referenced by posted entries or the accounting configuration"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{code}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	code := c.Param("code")

	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("tenant_id"), code, userID); err != nil {
		respondError(c, err, "deactivate account")
		return
	}

	logger.Info("Account deactivated", slog.String("account_code", code))
	c.Status(http.StatusNoContent)
}
