package approval

import (
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	approvals := r.Group("/approvals")
	approvals.Use(middleware.AuthMiddleware())
	{
		approvals.GET("/mine", h.GetMine)
		approvals.GET("/companies/:companyId", middleware.RBACAuthorize(rbacService, "approval", "read_all"), h.GetByCompany)
	}
}
