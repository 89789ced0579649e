package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the chat endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/chat/sessions")
	sessions.POST("", h.StartSession)
	sessions.POST("/:id/messages", h.Send)
	sessions.GET("/:id", h.Transcript)
	sessions.DELETE("/:id", h.EndSession)
}
