package middleware

import (
	"net/http"
	"strings"

	jwtsvc "github.com/DucPPhan/parknow/internal/pkg/jwt"
	"github.com/DucPPhan/parknow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores user_id on the context. The
// client treats any 401 as a session expiry signal, so every failure mode
// here must answer 401.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("phone", claims.Phone)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, message)
	c.Abort()
}
