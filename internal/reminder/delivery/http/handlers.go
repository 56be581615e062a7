package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/pkg/response"
)

// List godoc
// @Summary     List reminders
// @Description Returns every stored reminder in creation order.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Warnf(ctx, "reminder.delivery.http.List: %v", err)
	}

	response.OK(c, h.newListResp(out))
}

// Clear godoc
// @Summary     Clear reminders
// @Description Removes every stored reminder.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Failed to clear reminders"
// @Router      /api/v1/reminders [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "reminder.delivery.http.Clear: %v", err)
		response.Error(c, errClearFailed)
		return
	}

	response.OK(c, clearResp{Message: MessageCleared})
}
