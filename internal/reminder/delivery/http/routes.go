package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	reminders.GET("", h.List)
	reminders.DELETE("", mw.RateLimit(), h.Clear)
}
