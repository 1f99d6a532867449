package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/utils"
)

// RequireRole runs after CookieAuth and rejects claims whose role is not in
// the allow set.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	allow := map[models.UserRole]struct{}{}
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get("role")
		role, _ := v.(string)

		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, apiError{
				Code:    utils.CodeForbidden,
				Message: "forbidden",
			})
			return
		}

		if _, ok := allow[models.UserRole(role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apiError{
				Code:    utils.CodeForbidden,
				Message: "forbidden",
			})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc { return RequireRole(models.RoleAdmin) }
