package app

import (
	"context"
	"database/sql"
	"path/filepath"

	"go-workforce/internal/attendance"
	"go-workforce/internal/audit"
	"go-workforce/internal/auth"
	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/org"
	"go-workforce/internal/payroll"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"
	"go-workforce/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// attendanceSummaries bridges the attendance service to the summary
// interface payroll generation consumes.
type attendanceSummaries struct {
	svc attendance.Service
}

func (a attendanceSummaries) SummarizeMonth(ctx context.Context, employeeID string, month, year int) (payroll.MonthSummary, error) {
	s, err := a.svc.SummarizeMonth(ctx, employeeID, month, year)
	if err != nil {
		return payroll.MonthSummary{}, err
	}
	return payroll.MonthSummary{
		PresentDays:   s.PresentDays,
		AbsentDays:    s.AbsentDays,
		LateDays:      s.LateDays,
		HalfDays:      s.HalfDays,
		OvertimeHours: s.OvertimeHours,
	}, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	auditRepo := audit.NewRepository(gormDB)
	orgRepo := org.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Cross-domain lookups ---
	directory := employee.NewDirectory(employeeRepo)

	// --- Services ---
	orgService := org.NewService(db, orgRepo, auditRepo, directory)
	attendanceService := attendance.NewService(db, attendanceRepo, directory)
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo, directory, attendanceSummaries{attendanceService})
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	authService := auth.NewService(employeeRepo, rbacRepo)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditRepo)
	orgHandler := org.NewHandler(orgService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)
	employeeHandler := employee.NewHandler(employeeService)
	authHandler := auth.NewHandler(authService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		audit.RegisterRoutes(api, auditHandler, rbacService)
		org.RegisterRoutes(api, orgHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
