package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService Service) {
	perms := r.Group("/lead-permissions")
	perms.Use(middleware.AuthMiddleware())
	{
		perms.GET("/:lead_id", middleware.Authorize(rbacService, "lead_permission", "read"), handler.GetLeadPermissions)
		perms.PUT("/:lead_id", middleware.Authorize(rbacService, "lead_permission", "update"), handler.UpdateLeadPermissions)
	}
}
