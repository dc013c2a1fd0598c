package dashboard

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
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.ContextLogger(logger))
	{
		dashboard.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "dashboard", "read"),
			handler.Stats,
		)
	}
}
