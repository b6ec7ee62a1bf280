package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/task"
	"task-tracker/pkg/log"
)

// Handler is the JSON API for the command session.
type Handler interface {
	Execute(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
