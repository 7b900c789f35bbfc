package usecase

import (
	"time"

	"task-management/internal/task"
	"task-management/internal/task/cache"
	"task-management/internal/task/repository"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

// Config holds optional collaborators of the task use case.
type Config struct {
	// Location defines the local day for the today view. Defaults to UTC.
	Location *time.Location
	// Calendar is nil when calendar sync is disabled.
	Calendar   task.CalendarSyncer
	CalendarID string
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	cache *cache.ViewCache

	days       *datemath.Parser
	calendar   task.CalendarSyncer
	calendarID string
	now        func() time.Time
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, views *cache.ViewCache, cfg Config) *implUseCase {
	if views == nil {
		views = cache.New(0, 0)
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		cache:      views,
		days:       datemath.NewParserInLocation(cfg.Location),
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		now:        time.Now,
	}
}
