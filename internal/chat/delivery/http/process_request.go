package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errInvalidID
	}
	return id, nil
}

func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		return sendReq{}, err
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.processSendReq: invalid body: %v", err)
		return sendReq{}, errEmptyText
	}
	if err := req.validate(); err != nil {
		return sendReq{}, err
	}
	req.SessionID = id

	return req, nil
}
