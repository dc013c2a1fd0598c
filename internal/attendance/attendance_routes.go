package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.POST("/check-in",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "attendance", "check_in"),
			handler.CheckIn,
		)

		attendance.POST("/check-out",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "attendance", "check_out"),
			handler.CheckOut,
		)

		attendance.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)

		attendance.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "attendance", "create"),
			handler.Create,
		)

		attendance.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "attendance", "update"),
			handler.Update,
		)

		attendance.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "attendance", "delete"),
			handler.Delete,
		)
	}
}
