package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/speak", mw.RateLimit(), h.Speak)
}
