package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/meridianpress/ledger/internal/core/domain"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/middleware"
	"github.com/meridianpress/ledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerCompanyRoutes(v1, service.Company)

	// Company-scoped routes: every ledger resource lives inside one company.
	companySpecific := v1.Group("/companies/:company_id")
	registerAccountRoutes(companySpecific, service.Account)
	registerJournalRoutes(companySpecific, service.Journal)
	registerLedgerRoutes(companySpecific, service.Ledger)
	registerReportingRoutes(companySpecific, service.Reporting)
}

// registerCustomValidators installs request-binding validators used by the DTOs.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).IsValid()
		})
	}
}
