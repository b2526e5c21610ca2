// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tab1k/tbd-back/internal/i18n"
	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/utils"
)

// AuthRequired validates the bearer token and records the caller's identity
// and role in the request context. Requests without a valid token are
// rejected.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := string(utils.GetLangFromContext(c))

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenExpired))
			c.Abort()
			return
		}

		utils.SetUserID(c, claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		utils.SetCallerRole(c, utils.CallerAdmin)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := string(utils.GetLangFromContext(c))

		role, exists := c.Get("user_role")
		if !exists || (role != string(models.UserRoleAdmin) && role != string(models.UserRoleEditor)) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAdminAccessDenied))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth records the caller's identity when a valid token is present
// but never rejects the request. It does not elevate the caller role:
// public routes keep the public projection regardless of who is browsing.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		utils.SetUserID(c, claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}
