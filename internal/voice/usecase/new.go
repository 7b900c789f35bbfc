package usecase

import (
	"time"

	"task-management/internal/voice"
	"task-management/internal/voice/extract"
	"task-management/pkg/log"
)

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	l           log.Logger
	transcriber voice.Transcriber
	model       *extract.LLM
	limits      voice.Limits
	language    string
	loc         *time.Location
	now         func() time.Time
}

// Config groups the voice pipeline settings.
type Config struct {
	Limits   voice.Limits
	Language string
	Location *time.Location
}

// New creates a new voice UseCase implementation.
func New(l log.Logger, transcriber voice.Transcriber, model *extract.LLM, cfg Config) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:           l,
		transcriber: transcriber,
		model:       model,
		limits:      cfg.Limits,
		language:    cfg.Language,
		loc:         loc,
		now:         time.Now,
	}
}
