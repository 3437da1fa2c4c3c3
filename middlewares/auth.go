// file: middlewares/auth.go
package middlewares

import (
	"net/http"
	"strings"

	"InnoHub/models"
	"InnoHub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware requires a valid bearer token and stores the identity
// in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, 4001, "Missing Authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4001, "Invalid token")
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware gates a route on a capability set. Admin passes
// every gate.
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, 4001, "Missing user role in context")
			c.Abort()
			return
		}
		role := roleAny.(models.UserRole)

		if !models.HasAnyRole(role, requiredRoles) {
			c.JSON(http.StatusForbidden, gin.H{"code": 4003, "msg": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
