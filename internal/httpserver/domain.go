package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "task-management/internal/analytics/delivery/http"
	analyticsUC "task-management/internal/analytics/usecase"
	"task-management/internal/middleware"
	taskHTTP "task-management/internal/task/delivery/http"
	taskRepo "task-management/internal/task/repository/postgre"
	taskUC "task-management/internal/task/usecase"
	voiceHTTP "task-management/internal/voice/delivery/http"
	"task-management/internal/voice/extract"
	voiceUC "task-management/internal/voice/usecase"
)

// setupTaskDomain registers /api/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.postgresDB, srv.l, srv.parser.Location())

	uc := taskUC.New(srv.l, repo, srv.views, taskUC.Config{
		Location:   srv.parser.Location(),
		Calendar:   srv.calendar,
		CalendarID: srv.calendarID,
	})

	h := taskHTTP.New(srv.l, uc, srv.parser)
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered with calendar sync")
	} else {
		srv.l.Infof(ctx, "Task domain registered")
	}
	return nil
}

// setupAnalyticsDomain registers /api/analytics over the task repository.
func (srv HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.postgresDB, srv.l, srv.parser.Location())
	uc := analyticsUC.New(srv.l, repo, srv.parser.Location())

	h := analyticsHTTP.New(srv.l, uc)
	analyticsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}

// setupVoiceDomain registers /api/voice.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := voiceUC.New(srv.l, srv.transcriber, extract.NewLLM(srv.generator), voiceUC.Config{
		Limits:   srv.voiceLimits,
		Language: srv.voiceLanguage,
		Location: srv.parser.Location(),
	})

	h := voiceHTTP.New(srv.l, uc, srv.voiceLimits.MaxAudioBytes)
	voiceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
