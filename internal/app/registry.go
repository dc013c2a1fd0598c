package app

import (
	"database/sql"

	"go-hrms/internal/appeal"
	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/dashboard"
	"go-hrms/internal/employee"
	"go-hrms/internal/fine"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	fineRepo := fine.NewRepository(gormDB)
	appealRepo := appeal.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	permissionService := rbac.NewPermissionService(rbacRepo)

	// --- Services ---
	settingsService := settings.NewService(settingsRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	authService := auth.NewService(employeeRepo)
	attendanceService := attendance.NewService(attendanceRepo, settingsService)
	leaveService := leave.NewService(leaveRepo)
	fineService := fine.NewService(fineRepo)
	appealService := appeal.NewService(appealRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	fineHandler := fine.NewHandler(fineService)
	appealHandler := appeal.NewHandler(appealService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	settingsHandler := settings.NewHandler(settingsService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	rbacHandler := rbac.NewHandler(permissionService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		fine.RegisterRoutes(api, fineHandler, rbacService, logger)
		appeal.RegisterRoutes(api, appealHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		settings.RegisterRoutes(api, settingsHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
