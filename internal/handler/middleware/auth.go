package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"clipvault/internal/pkg/cookie"
	"clipvault/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "admin"

type AuthMiddleware struct {
	auth usecase.AdminAuthUseCase
}

func NewAuthMiddleware(auth usecase.AdminAuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAdmin accepts the admin cookie or a Bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Admin token required"},
			})
			return
		}

		if err := m.auth.ValidateToken(token); err != nil {
			slog.Warn("Admin token rejected", "error", err.Error(), "request_id", GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}
