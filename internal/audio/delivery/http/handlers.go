package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/pkg/response"
)

// Speak godoc
// @Summary     Synthesize speech
// @Description Converts text to an MP3 artifact served under /static/audio.
// @Tags        Audio
// @Accept      json
// @Produce     json
// @Param       body body speakReq true "Text to speak"
// @Success     200  {object} speakResp
// @Failure     400  {object} response.Resp "No text provided or empty text"
// @Failure     500  {object} response.Resp "Failed to generate speech"
// @Router      /api/v1/speak [POST]
func (h *handler) Speak(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSpeakReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Speak(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audio.delivery.http.Speak: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSpeakResp(out))
}
