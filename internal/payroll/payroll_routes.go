package payroll

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, redisClient *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", rbac.Authorize(rbacService, "payroll", "read"), h.GetAll)
		payrolls.GET("/:id", rbac.Authorize(rbacService, "payroll", "read"), h.GetByID)
		payrolls.POST("",
			rbac.Authorize(rbacService, "payroll", "create"),
			middleware.Idempotency(redisClient),
			h.Create,
		)
		payrolls.POST("/generate",
			rbac.Authorize(rbacService, "payroll", "create"),
			middleware.Idempotency(redisClient),
			h.Generate,
		)
		payrolls.PATCH("/:id", rbac.Authorize(rbacService, "payroll", "update"), h.Update)
		payrolls.PATCH("/:id/status", rbac.Authorize(rbacService, "payroll", "approve"), h.UpdateStatus)
		payrolls.DELETE("/:id", rbac.Authorize(rbacService, "payroll", "delete"), h.Delete)
	}
}
