package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/silverhold/codehub-backend/internal/auth/service"
)

// RequireSession guards admin-only routes. The store holds at most one
// session, so presence of a logged-in admin is the whole check; the admin id
// is stored in context as "admin_id" for downstream handlers.
func RequireSession(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := auth.Current()
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "authentication required",
			})
			return
		}

		c.Set("admin_id", admin.ID)
		c.Next()
	}
}
