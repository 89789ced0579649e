package http

import (
	"github.com/gin-gonic/gin"

	"course-compass/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Creates an empty conversation and returns its id.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} startResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newStartResp(output))
}

// Send godoc
// @Summary     Send a message
// @Description Sends one user message and returns the advisor reply with the updated transcript.
// @Description When the advisor fails the reply is an apology, failed is true and the transcript is unchanged.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Send: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Transcript godoc
// @Summary     Get a transcript
// @Description Returns the ordered turns of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Transcript(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// EndSession godoc
// @Summary     End a chat session
// @Description Discards the session and its transcript.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.EndSession(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}
