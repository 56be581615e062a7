package http

import "github.com/gin-gonic/gin"

func (h *handler) processSpeakReq(c *gin.Context) (speakReq, error) {
	var req speakReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNoText
	}
	return req, req.validate()
}
