package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// HeaderTelegramSecret is set by Telegram on webhook calls when a secret token
// was given to setWebhook.
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls whose secret header does not match the
// configured token. With no token configured every call passes.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secretToken == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderTelegramSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.secretToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected webhook call from %s", clientIP(c))
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
