package http

import (
	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
)

// RegisterRoutes mounts the voice endpoints. Both are authenticated and
// rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	v := rg.Group("/voice", mw.Auth(), mw.RateLimit())
	{
		v.POST("/transcribe", h.Transcribe)
		v.POST("/extract", h.Extract)
	}
}
