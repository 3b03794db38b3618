package http

import (
	"github.com/gin-gonic/gin"

	"learning-activity-agent/internal/middleware"
)

// RegisterRoutes maps the conversation memory endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/conversations/sessions", mw.RateLimit())
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id/messages", h.History)
		sessions.POST("/:id/messages", h.AddMessage)
		sessions.GET("/:id/search", h.Search)
		sessions.GET("/:id/semantic", h.SemanticSearch)
	}
}
