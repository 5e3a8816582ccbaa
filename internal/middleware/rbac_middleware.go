package middleware

import (
	"net/http"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface; anything with an Enforce method
// over domain.EnforceRequest fits.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize gates a company-scoped route on resource:action. The
// company comes from the route parameter; the employee from the auth
// middleware. Service-level ownership checks remain authoritative,
// this is the coarse outer gate.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		companyID := c.Param("companyId")

		if employeeID == "" || companyID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
