package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "leave", "create"),
			handler.Create,
		)

		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "leave", "read"),
			handler.GetAll,
		)

		leaves.PUT("/:id/decision",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "leave", "decide"),
			handler.Decide,
		)

		leaves.PUT("/:id/cancel",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "leave", "cancel"),
			handler.Cancel,
		)

		leaves.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "leave", "update"),
			handler.Update,
		)

		leaves.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "leave", "delete"),
			handler.Delete,
		)
	}
}
