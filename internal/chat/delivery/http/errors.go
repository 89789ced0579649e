package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"course-compass/internal/chat"
	"course-compass/pkg/response"
)

var (
	errEmptyText = errors.New("text is required")
	errInvalidID = errors.New("session id is required")
)

// writeError maps use-case errors onto the response envelope.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
