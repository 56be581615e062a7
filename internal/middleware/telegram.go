package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"voice-assistant/pkg/response"
)

// HeaderTelegramSecret is set by Telegram on webhook calls when a secret
// token was registered with setWebhook.
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls without the configured secret token.
func (mw Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.telegramSecret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(HeaderTelegramSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(mw.telegramSecret)) != 1 {
			mw.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
