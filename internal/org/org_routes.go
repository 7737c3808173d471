package org

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	orgGroup := r.Group("/org")
	orgGroup.Use(middleware.AuthMiddleware())
	{
		orgGroup.GET("/roles", rbac.Authorize(rbacService, "org", "read"), h.ListRoles)
		orgGroup.GET("/tree", rbac.Authorize(rbacService, "org", "read"), h.GetRoleTree)
		orgGroup.POST("/roles", rbac.Authorize(rbacService, "org", "create"), h.CreateRole)
		orgGroup.PATCH("/roles/:id", rbac.Authorize(rbacService, "org", "update"), h.UpdateRole)
		orgGroup.DELETE("/roles/:id", rbac.Authorize(rbacService, "org", "delete"), h.DeleteRole)

		orgGroup.GET("/roles/:role_id/responsibilities", rbac.Authorize(rbacService, "org", "read"), h.GetResponsibilitiesByRole)
		orgGroup.POST("/roles/:role_id/responsibilities", rbac.Authorize(rbacService, "org", "create"), h.CreateResponsibility)
		orgGroup.PATCH("/responsibilities/:id", rbac.Authorize(rbacService, "org", "update"), h.UpdateResponsibility)
		orgGroup.DELETE("/responsibilities/:id", rbac.Authorize(rbacService, "org", "delete"), h.DeleteResponsibility)

		orgGroup.GET("/responsibilities/:responsibility_id/sub-responsibilities", rbac.Authorize(rbacService, "org", "read"), h.GetSubResponsibilitiesByResponsibility)
		orgGroup.POST("/responsibilities/:responsibility_id/sub-responsibilities", rbac.Authorize(rbacService, "org", "create"), h.CreateSubResponsibility)
		orgGroup.PATCH("/sub-responsibilities/:id", rbac.Authorize(rbacService, "org", "update"), h.UpdateSubResponsibility)
		orgGroup.DELETE("/sub-responsibilities/:id", rbac.Authorize(rbacService, "org", "delete"), h.DeleteSubResponsibility)

		orgGroup.GET("/responsibilities/:responsibility_id/coverage", rbac.Authorize(rbacService, "org", "read"), h.Coverage)

		orgGroup.GET("/export", rbac.Authorize(rbacService, "org", "read"), h.Export)
		orgGroup.POST("/import", rbac.Authorize(rbacService, "org", "create"), h.Import)
	}
}
