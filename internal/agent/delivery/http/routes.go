package http

import (
	"github.com/gin-gonic/gin"

	"learning-activity-agent/internal/middleware"
)

// RegisterRoutes maps the agent endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/agent")
	{
		a.POST("/chat", mw.Token(), mw.RateLimit(), h.Chat)
	}
}
