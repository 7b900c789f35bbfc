package usecase

import (
	"time"

	"task-management/internal/task/repository"
	"task-management/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	loc  *time.Location
	now  func() time.Time
}

// New creates the analytics UseCase over the task repository. Days are
// counted in loc.
func New(l log.Logger, repo repository.Repository, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}
