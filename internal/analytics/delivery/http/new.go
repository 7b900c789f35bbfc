package http

import (
	"task-management/internal/analytics"
	"task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates the analytics HTTP handler.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
