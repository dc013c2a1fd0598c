package fine

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
	fines := r.Group("/fines")
	fines.Use(middleware.AuthMiddleware())
	fines.Use(middleware.ContextLogger(logger))
	{
		fines.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "fine", "create"),
			handler.Create,
		)

		fines.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "fine", "read"),
			handler.GetAll,
		)

		fines.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "fine", "update"),
			handler.Update,
		)

		fines.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "fine", "delete"),
			handler.Delete,
		)
	}
}
