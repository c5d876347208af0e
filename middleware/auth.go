package middleware

import (
	"net/http"
	"strings"

	"consultly/models"
	"consultly/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware.
const (
	ContextCallerID   = "callerId"
	ContextCallerRole = "callerRole"
)

// AuthMiddleware parses the bearer token into the authenticated caller
// identity (id + role) the core's authorization checks run against. Token
// issuance happens elsewhere; this layer only validates.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		callerID, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}
		switch role {
		case models.RoleSeeker, models.RoleProvider, models.RoleAdmin:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown caller role",
			})
			return
		}

		c.Set(ContextCallerID, callerID)
		c.Set(ContextCallerRole, role)
		c.Next()
	}
}

// RequireRole aborts unless the authenticated caller holds one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextCallerRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Caller role is not allowed to perform this action",
		})
	}
}

// CallerIdentity returns the authenticated caller id and role from the context.
func CallerIdentity(c *gin.Context) (string, string) {
	return c.GetString(ContextCallerID), c.GetString(ContextCallerRole)
}
