package httpserver

import (
	"context"

	audioHTTP "voice-assistant/internal/audio/delivery/http"
	commandHTTP "voice-assistant/internal/command/delivery/http"
	reminderHTTP "voice-assistant/internal/reminder/delivery/http"
)

// registerDomainRoutes mounts the assistant API under /api/v1 and the
// Telegram webhook when a bot is configured.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	commandHTTP.RegisterRoutes(api, commandHTTP.New(srv.l, srv.commandUC, srv.audioUC), srv.mw)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, srv.reminderUC), srv.mw)
	audioHTTP.RegisterRoutes(api, audioHTTP.New(srv.l, srv.audioUC), srv.mw)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.TelegramSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
