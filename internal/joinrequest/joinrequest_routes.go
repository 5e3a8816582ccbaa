package joinrequest

import (
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	joinRequests := r.Group("/join-requests")
	joinRequests.Use(middleware.AuthMiddleware())
	{
		joinRequests.POST("", h.Create)
		joinRequests.POST("/:id/approve", h.Approve)
		joinRequests.POST("/:id/reject", h.Reject)
		joinRequests.GET("/companies/:companyId/pending", middleware.RBACAuthorize(rbacService, "joinrequest", "read"), h.GetPendingByCompany)
		joinRequests.GET("/companies/:companyId/mine", h.GetMineByCompany)
	}
}
