package middleware

import (
	"net/http"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// PolicyService is a local interface; any package exposing Enforce/OwnOnly
// (in practice the rbac service) fits here without an import cycle.
type PolicyService interface {
	Enforce(role, resource, action string) (bool, error)
	OwnOnly(role, resource, action string) bool
}

// Authorize evaluates the policy table once per request. When the grant is
// owner-scoped it sets "scope_self" so handlers restrict the query to the
// caller's own employee id.
func Authorize(service PolicyService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}

		c.Set("scope_self", service.OwnOnly(role, resource, action))
		c.Next()
	}
}
