package attendance

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", rbac.Authorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.POST("/clock-in", rbac.Authorize(rbacService, "attendance", "create"), h.ClockIn)
		attendances.POST("/clock-out", rbac.Authorize(rbacService, "attendance", "create"), h.ClockOut)
		attendances.PATCH("/:id", rbac.Authorize(rbacService, "attendance", "update"), h.Correct)
		attendances.POST("/:id/approve", rbac.Authorize(rbacService, "attendance", "approve"), h.Approve)
		attendances.GET("/reports/:period", rbac.Authorize(rbacService, "attendance", "read"), h.MonthlyReport)
	}
}
