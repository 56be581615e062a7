package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/command"
	pkgErrors "voice-assistant/pkg/errors"
	"voice-assistant/pkg/response"
)

// Handle godoc
// @Summary     Handle a text command
// @Description Classifies the utterance and returns the assistant's answer.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Utterance"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.Resp "No text provided"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, h.newCommandResp(*req.Text, out))
}

// ProcessAudio godoc
// @Summary     Handle a spoken command
// @Description Transcribes the uploaded recording and handles it as a command.
// @Tags        Commands
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio_data formData file true "Recorded audio (WAV or FLAC)"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Missing, empty or unintelligible audio"
// @Failure     413 {object} response.Resp "Audio file is too large"
// @Failure     500 {object} response.Resp "Speech recognition unavailable"
// @Router      /api/v1/process_audio [POST]
func (h *handler) ProcessAudio(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	text, err := h.audio.Transcribe(ctx, data)
	if err != nil {
		h.l.Warnf(ctx, "audio.Transcribe: %v", err)
		response.Error(c, h.mapAudioError(err))
		return
	}

	out, err := h.uc.Handle(ctx, command.HandleInput{Text: text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, h.newCommandResp(text, out))
}
