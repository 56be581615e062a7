package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// MaxAudioBytes bounds an uploaded recording.
const MaxAudioBytes = 10 << 20

// audioFormField is the multipart field holding the recording.
const audioFormField = "audio_data"

func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNoText
	}
	return req, req.validate()
}

// processAudioReq reads the uploaded recording into memory.
func (h *handler) processAudioReq(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(audioFormField)
	if err != nil {
		return nil, errNoAudioFile
	}
	if fh.Size > MaxAudioBytes {
		return nil, errAudioTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errAudioProcessing
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxAudioBytes+1))
	if err != nil {
		return nil, errAudioProcessing
	}
	if len(data) > MaxAudioBytes {
		return nil, errAudioTooLarge
	}
	if len(data) == 0 {
		return nil, errEmptyAudioFile
	}

	h.l.Infof(c.Request.Context(), "command.delivery.http: received audio %s (%s, %d bytes)",
		fh.Filename, fh.Header.Get("Content-Type"), len(data))
	return data, nil
}
