package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianpress/ledger/internal/core/domain"
)

// Operation names used by the role policy. One name per mutating or
// privileged endpoint; reads share OpView.
const (
	OpView           = "ledger:view"
	OpManageAccounts = "accounts:manage"
	OpDraftEntry     = "journal:draft"
	OpPostEntry      = "journal:post"
	OpReconcileEntry = "journal:reconcile"
	OpVoidEntry      = "journal:void"
	OpManageCompany  = "company:manage"
)

// rolePolicy maps each operation to the minimum role it requires.
var rolePolicy = map[string]domain.Role{
	OpView:           domain.RoleReadOnly,
	OpManageAccounts: domain.RoleMember,
	OpDraftEntry:     domain.RoleMember,
	OpPostEntry:      domain.RoleMember,
	OpReconcileEntry: domain.RoleMember,
	OpVoidEntry:      domain.RoleAdmin,
	OpManageCompany:  domain.RoleAdmin,
}

// RequireOperation aborts with 403 unless the authenticated actor's role
// satisfies the policy entry for the named operation. Unknown operations
// are treated as admin-only.
func RequireOperation(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		required, ok := rolePolicy[op]
		if !ok {
			required = domain.RoleAdmin
		}

		if !actor.Role.Satisfies(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}

		c.Next()
	}
}
