package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medxhealth/medx/internal/auth"
	"github.com/medxhealth/medx/internal/utils"
)

// TokenCookie is the session cookie set by login and read by CookieAuth.
const TokenCookie = "token"

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// CookieAuth rejects requests without a valid token cookie and exposes the
// verified claims through the context keys user_id, email, role and
// hospital_id.
func CookieAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(TokenCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "unauthorized",
			})
			return
		}

		claims, err := tm.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid token",
			})
			return
		}

		c.Set("user_id", claims.AccountID())
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Set("hospital_id", claims.HospitalID)
		c.Next()
	}
}
