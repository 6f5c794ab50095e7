package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/cmd/docs"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. extra runs on /api/v1 after authentication.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	extra ...gin.HandlerFunc,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, extra...)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and the tenant-scoped routes below it.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	extra ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1.Use(extra...)

	RegisterTenantRoutes(v1, services, cfg.CurrencyExponent)
}

// RegisterTenantRoutes mounts every ledger route under /tenants/:tenant_id.
// Members of the tenant with at least the viewer role get through; handlers enforce stronger roles.
func RegisterTenantRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, exponent int) {
	tenant := rg.Group("/tenants/:tenant_id", tenantAccess(services.Authorizer, domain.RoleViewer))

	registerAccountRoutes(tenant, services.Account)
	registerConfigRoutes(tenant, services.Config)
	registerJournalRoutes(tenant, services.Journal, exponent)
	registerEventRoutes(tenant, services.Event, services.Authorizer, exponent)
	registerLedgerRoutes(tenant, services.Ledger, exponent)
	registerReportingRoutes(tenant, services.Reporting, exponent)
}

// tenantAccess rejects users who do not hold role in the tenant named by the path.
func tenantAccess(authorizer portssvc.TenantAuthorizerSvc, role domain.TenantRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUser(c)
		if !ok {
			c.Abort()
			return
		}
		tenantID := c.Param("tenant_id")
		if authorizer == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if err := authorizer.AuthorizeUserAction(c.Request.Context(), userID, tenantID, role); err != nil {
			respondError(c, err, "authorize")
			c.Abort()
			return
		}

		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID))
		c.Request = c.Request.WithContext(middleware.WithLogger(c.Request.Context(), logger))
		c.Next()
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
