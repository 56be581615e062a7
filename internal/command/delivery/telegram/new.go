package telegram

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/command"
	"voice-assistant/pkg/log"
	pkgTelegram "voice-assistant/pkg/telegram"
)

// Handler serves Telegram webhook updates.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     command.UseCase
	sender pkgTelegram.Sender
}

// New creates the Telegram delivery handler.
func New(l log.Logger, uc command.UseCase, sender pkgTelegram.Sender) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		sender: sender,
	}
}
