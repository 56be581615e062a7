package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/middleware"
)

// RegisterRoutes maps the command endpoints. Both are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/commands", mw.RateLimit(), h.Handle)
	rg.POST("/process_audio", mw.RateLimit(), h.ProcessAudio)
}
