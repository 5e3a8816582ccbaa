package holiday

import (
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("/companies/:companyId/balance", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.GetBalance)
		holidays.GET("/companies/:companyId/upcoming", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.GetUpcoming)
		holidays.GET("/companies/:companyId", h.GetCompanyByMonth)
		holidays.GET("/bank/:countryCode", h.GetBankHolidays)
	}
}
