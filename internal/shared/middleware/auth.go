package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

const (
	// ContextUserIDKey is where RequireAuth stores the authenticated user id.
	ContextUserIDKey = "userID"
	// ContextEmailKey is where RequireAuth stores the authenticated email.
	ContextEmailKey = "email"
)

// RequireAuth guards mutating routes. It validates the bearer token and
// puts the user's id and email into the gin context.
func RequireAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)

		c.Next()
	}
}

// UserID returns the authenticated user id from the context, or 0 when the
// request went through an unguarded route.
func UserID(c *gin.Context) int64 {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}

	id, ok := value.(int64)
	if !ok {
		return 0
	}
	return id
}
