package http

import (
	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/analytics", mw.Auth(), h.Report)
}
