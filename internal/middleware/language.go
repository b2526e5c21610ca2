// internal/middleware/language.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tab1k/tbd-back/internal/translation"
	"github.com/tab1k/tbd-back/internal/utils"
)

// Language resolves the response language once per request, preferring the
// ?lang query parameter over the Accept-Language header, and stores it in the
// context for handlers and serializers.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translation.FromRequest(c.Query("lang"), c.GetHeader("Accept-Language"))
		utils.SetLang(c, lang)
		c.Next()
	}
}
