package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/meridianpress/ledger/internal/middleware"
)

// scopedCompany resolves the company_id path parameter and the authenticated
// actor, aborting the request when either is missing or when the actor belongs
// to a different company. The company scope in the URL must always match the
// actor's own company.
func scopedCompany(c *gin.Context) (string, domain.Actor, bool) {
	companyID := c.Param("company_id")
	if companyID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Company ID is required"})
		return "", domain.Actor{}, false
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", domain.Actor{}, false
	}

	if actor.CompanyID != companyID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return "", domain.Actor{}, false
	}

	return companyID, actor, true
}
