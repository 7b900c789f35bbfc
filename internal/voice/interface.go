package voice

import (
	"context"

	"task-management/internal/model"
	"task-management/pkg/openai"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Transcribe(ctx context.Context, sc model.Scope, input TranscribeInput) (TranscribeOutput, error)
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)
}

// Transcriber converts audio to text. openai.IOpenAI satisfies it.
type Transcriber interface {
	Transcribe(ctx context.Context, req openai.TranscribeRequest) (string, error)
}
