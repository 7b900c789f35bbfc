package http

import (
	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
)

// RegisterRoutes mounts the task endpoints behind the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/today", h.Today)
		tasks.POST("/batch", h.Batch)
		tasks.PATCH("/:id", h.Patch)
		tasks.DELETE("/:id", h.Delete)
	}
}
