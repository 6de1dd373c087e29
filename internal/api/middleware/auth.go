package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/api/models"
	"reviewhub/internal/api/service"
)

// Context keys set by Authenticate and read by handlers.
const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Authenticate validates the Bearer token and stores the claims in the
// request context. Requests without a valid token are rejected with 401.
func Authenticate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireRole rejects requests whose role ranks below min. Roles form a
// strict ladder (user < moderator < admin), so a higher role always passes
// a lower gate.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextKeyRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not found in token"})
			c.Abort()
			return
		}

		role, ok := roleValue.(models.Role)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid role format"})
			c.Abort()
			return
		}

		if !role.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "insufficient permissions",
				"required": string(min),
				"current":  string(role),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience gate for admin-only routes.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// ActorFrom rebuilds the acting user from context values set by
// Authenticate. The second return is false when the request never passed
// through it.
func ActorFrom(c *gin.Context) (service.Actor, bool) {
	userID, ok := c.Get(ContextKeyUserID)
	if !ok {
		return service.Actor{}, false
	}
	roleValue, ok := c.Get(ContextKeyRole)
	if !ok {
		return service.Actor{}, false
	}

	id, ok := userID.(string)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := roleValue.(models.Role)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{UserID: id, Role: role}, true
}
