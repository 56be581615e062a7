package telegram

import (
	"context"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"voice-assistant/internal/command"
	cmdUsecase "voice-assistant/internal/command/usecase"
	"voice-assistant/pkg/response"
)

// HandleWebhook answers one Telegram update. The reply is sent before the
// webhook call returns, and the call always answers 200 so Telegram never
// redelivers an update, including ones that failed.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: parse update: %v", err)
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	reply := h.reply(ctx, msg)
	if err := h.sender.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: send to chat %d: %v", msg.Chat.ID, err)
	}

	response.OK(c, map[string]string{"status": "processed"})
}

func (h *handler) reply(ctx context.Context, msg *tgbotapi.Message) string {
	if msg.IsCommand() {
		switch msg.Command() {
		case commandStart, commandHelp:
			return cmdUsecase.ResponseHelp
		}
	}

	if msg.Text == "" {
		return replyNotText
	}

	out, err := h.uc.Handle(ctx, command.HandleInput{Text: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram.reply: uc.Handle: %v", err)
		return replyFailed
	}
	return out.Response
}
