// internal/utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/tab1k/tbd-back/internal/translation"
)

// CallerRole is the capability of the authenticated caller, resolved once at
// the auth boundary and carried explicitly through the request context. The
// serialization layer branches on it instead of inspecting the request shape.
type CallerRole string

const (
	CallerPublic CallerRole = "public"
	CallerAdmin  CallerRole = "admin"
)

const (
	ctxKeyLang   = "lang"
	ctxKeyRole   = "caller_role"
	ctxKeyUserID = "user_id"
)

func SetLang(c *gin.Context, lang translation.Language) {
	c.Set(ctxKeyLang, lang)
}

func GetLangFromContext(c *gin.Context) translation.Language {
	if lang, exists := c.Get(ctxKeyLang); exists {
		if l, ok := lang.(translation.Language); ok {
			return l
		}
	}
	return translation.LanguageRU
}

func SetCallerRole(c *gin.Context, role CallerRole) {
	c.Set(ctxKeyRole, role)
}

func GetCallerRole(c *gin.Context) CallerRole {
	if role, exists := c.Get(ctxKeyRole); exists {
		if r, ok := role.(CallerRole); ok {
			return r
		}
	}
	return CallerPublic
}

func SetUserID(c *gin.Context, id string) {
	c.Set(ctxKeyUserID, id)
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get(ctxKeyUserID); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}
