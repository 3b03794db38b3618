package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Token copies an optional bearer token from the Authorization header into the
// gin context. It never rejects a request; the Activity service owns auth.
func (m Middleware) Token() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			c.Set(ContextKeyToken, token)
		}
		c.Next()
	}
}

// GetToken returns the token stored by Token, or "".
func GetToken(c *gin.Context) string {
	return c.GetString(ContextKeyToken)
}

func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
