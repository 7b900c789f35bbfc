package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"task-management/config"
	_ "task-management/docs" // Swagger docs
	"task-management/internal/httpserver"
	"task-management/internal/middleware"
	"task-management/internal/model"
	"task-management/internal/task"
	"task-management/internal/task/cache"
	taskRepo "task-management/internal/task/repository/postgre"
	"task-management/internal/voice"
	"task-management/pkg/datemath"
	"task-management/pkg/gcalendar"
	"task-management/pkg/llmprovider"
	"task-management/pkg/log"
	"task-management/pkg/openai"
)

// @title       Task Management API
// @description Personal task management with voice capture, filtering and analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := openPostgres(cfg.Postgres, cfg.Environment.Name)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}
	if cfg.Postgres.AutoMigrate {
		if err := taskRepo.AutoMigrate(db); err != nil {
			logger.Error(ctx, "Failed to migrate schema: ", err)
			return
		}
		logger.Info(ctx, "Schema migrated")
	}

	// 4. Timezone for deadlines and day windows
	parser, err := datemath.NewParser(cfg.Voice.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 5. LLM providers for task extraction
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 6. Speech-to-text
	transcriber, err := openai.New(openai.Config{
		APIKey:             cfg.Voice.Transcription.APIKey,
		BaseURL:            cfg.Voice.Transcription.BaseURL,
		TranscriptionModel: cfg.Voice.Transcription.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize transcription client: ", err)
		return
	}

	// 7. Google Calendar (optional)
	var calendar task.CalendarSyncer
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	limits := voice.DefaultLimits()
	if cfg.Voice.MinAudioBytes > 0 {
		limits.MinAudioBytes = cfg.Voice.MinAudioBytes
	}
	if cfg.Voice.MaxAudioBytes > 0 {
		limits.MaxAudioBytes = cfg.Voice.MaxAudioBytes
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Middleware: middleware.Config{
			JWTSecret:       cfg.Auth.JWTSecret,
			Issuer:          cfg.Auth.Issuer,
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.Voice.RateLimitPerMin,
		},
		Parser:        parser,
		Cache:         cache.New(cfg.Cache.Size, cfg.Cache.TTL),
		Calendar:      calendar,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Transcriber:   transcriber,
		Generator:     manager,
		VoiceLimits:   limits,
		VoiceLanguage: cfg.Voice.Transcription.Language,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openPostgres(cfg config.PostgresConfig, environment string) (*gorm.DB, error) {
	level := gormLogger.Warn
	if environment == string(model.EnvironmentProduction) {
		level = gormLogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}
