package employee

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", rbac.Authorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/options", rbac.Authorize(rbacService, "employee", "read"), h.GetOptions)
		employees.GET("/:id", rbac.Authorize(rbacService, "employee", "read"), h.GetByID)
		employees.POST("", rbac.Authorize(rbacService, "employee", "create"), h.Create)
		employees.PATCH("/:id", rbac.Authorize(rbacService, "employee", "update"), h.Update)

		employees.GET("/:id/assignments", rbac.Authorize(rbacService, "employee", "read"), h.GetAssignments)
		employees.POST("/:id/assignments", rbac.Authorize(rbacService, "employee", "update"), h.Assign)
		employees.DELETE("/:id/assignments/:responsibility_id", rbac.Authorize(rbacService, "employee", "update"), h.Unassign)
	}
}
