package rbac

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, service Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/permissions", Authorize(service, "rbac", "read"), h.ListPermissions)
		group.GET("/roles/:role_id/permissions", Authorize(service, "rbac", "read"), h.GetRolePermissions)
		group.PUT("/roles/:role_id/permissions", Authorize(service, "rbac", "update"), h.UpdateRolePermissions)
		group.POST("/check", Authorize(service, "rbac", "read"), h.Check)
	}
}
