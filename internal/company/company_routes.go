package company

import (
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.POST("", h.Create)
		companies.GET("/mine", h.GetMine)
		companies.GET("/:companyId", h.GetById)
	}
}
