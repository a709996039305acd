package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxRoleKey = "staff_role"

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireRole authenticates the bearer token and admits only the listed
// roles. Every ledger route is wrapped by it; the login route is the only
// unauthenticated endpoint.
func (m *AuthMiddleware) RequireRole(roles ...staff.Role) gin.HandlerFunc {
	allowed := make(map[staff.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		role, err := m.auth.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetRole returns the authenticated role set by RequireRole.
func GetRole(c *gin.Context) (staff.Role, bool) {
	value, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(staff.Role)
	return role, ok
}
