package audit

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.GET("", rbac.Authorize(rbacService, "audit", "read"), h.ListRecent)
		logs.GET("/:entity_type/:entity_id", rbac.Authorize(rbacService, "audit", "read"), h.ListByEntity)
	}
}
