package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tomibudis/task-manager-webapp/pkg/translator"
)

// LanguageMiddleware sets the response language from the Accept-Language
// header, falling back to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Primary subtag only: "fr-FR,fr;q=0.9" selects fr.
		lang := c.GetHeader("Accept-Language")
		if i := strings.IndexAny(lang, ",;-"); i >= 0 {
			lang = lang[:i]
		}
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
