package appeal

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
	appeals := r.Group("/appeals")
	appeals.Use(middleware.AuthMiddleware())
	appeals.Use(middleware.ContextLogger(logger))
	{
		appeals.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "appeal", "create"),
			handler.Create,
		)

		appeals.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "appeal", "read"),
			handler.GetAll,
		)

		appeals.PUT("/:id/decision",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "appeal", "decide"),
			handler.Decide,
		)
	}
}
