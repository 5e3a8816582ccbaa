package request

import (
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("/expenses", h.CreateExpense)
		requests.POST("/holidays", h.CreateHoliday)
		requests.POST("/overtime", h.CreateOvertime)
		requests.POST("/financial", h.CreateFinancial)
		requests.POST("/sign-offs", h.CreateSignOff)

		requests.POST("/:id/approve", h.Approve)
		requests.POST("/:id/reject", h.Reject)
		requests.POST("/:id/cancel", h.Cancel)

		requests.GET("/companies/:companyId/pending", middleware.RBACAuthorize(rbacService, "request", "read_all"), h.GetPendingByCompany)
		requests.GET("/companies/:companyId/kind/:kind", h.GetByKind)
	}
}
