package http

import (
	"task-management/internal/task"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     task.UseCase
	parser *datemath.Parser
}

// New creates the task HTTP handler. parser reads deadlines and query
// dates in the user's timezone.
func New(l log.Logger, uc task.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
	}
}
