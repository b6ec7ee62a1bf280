package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
)

// RegisterRoutes maps the command API under rg. Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/commands", mw.RateLimit(), h.Execute)
	rg.GET("/tasks", mw.RateLimit(), h.List)
}
