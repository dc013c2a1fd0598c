package payroll

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		process := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(rbacService, "payroll", "process"),
		}
		if rdb != nil {
			process = append(process, middleware.Idempotency(rdb))
		}
		process = append(process, handler.Process)
		payrolls.POST("/process", process...)

		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)

		payrolls.GET("/status",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "payroll", "read"),
			handler.GetStatus,
		)
	}
}
