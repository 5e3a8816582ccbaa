package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token issued by the identity
// provider and places the authenticated employee into the gin context.
// The engine never authenticates; it only consumes the claims.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee ID not found in token", nil)
			c.Abort()
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Email not found in token", nil)
			c.Abort()
			return
		}

		c.Set("employee_id", employeeID)
		c.Set("employee_email", email)

		c.Next()
	}
}

// CurrentPrincipal reads the authenticated employee placed into the
// context by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) domain.Principal {
	return domain.Principal{
		EmployeeID: c.GetString("employee_id"),
		Email:      c.GetString("employee_email"),
	}
}
