package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"task-management/internal/middleware"
	"task-management/internal/task"
	"task-management/internal/task/cache"
	"task-management/internal/voice"
	"task-management/internal/voice/extract"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB *gorm.DB
	mwConfig   middleware.Config
	parser     *datemath.Parser
	views      *cache.ViewCache

	// Task domain
	calendar   task.CalendarSyncer
	calendarID string

	// Voice domain
	transcriber   voice.Transcriber
	generator     extract.Generator
	voiceLimits   voice.Limits
	voiceLanguage string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *gorm.DB
	Middleware middleware.Config
	// Parser fixes the user timezone for deadlines and day windows.
	Parser *datemath.Parser
	Cache  *cache.ViewCache

	// Calendar is optional.
	Calendar   task.CalendarSyncer
	CalendarID string

	Transcriber   voice.Transcriber
	Generator     extract.Generator
	VoiceLimits   voice.Limits
	VoiceLanguage string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.VoiceLimits == (voice.Limits{}) {
		cfg.VoiceLimits = voice.DefaultLimits()
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		mwConfig:        cfg.Middleware,
		parser:          cfg.Parser,
		views:           cfg.Cache,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		transcriber:     cfg.Transcriber,
		generator:       cfg.Generator,
		voiceLimits:     cfg.VoiceLimits,
		voiceLanguage:   cfg.VoiceLanguage,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.mwConfig.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	if srv.transcriber == nil {
		return errors.New("transcriber is required")
	}
	if srv.generator == nil {
		return errors.New("llm generator is required")
	}
	return nil
}
