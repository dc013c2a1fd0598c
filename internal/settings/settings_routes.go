package settings

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	settings.Use(middleware.ContextLogger(logger))
	{
		settings.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(rbacService, "settings", "read"),
			handler.Get,
		)

		settings.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "settings", "update"),
			handler.Update,
		)
	}
}
