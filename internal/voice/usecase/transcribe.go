package usecase

import (
	"context"
	"errors"
	"net/http"

	"task-management/internal/model"
	"task-management/internal/voice"
	"task-management/internal/voice/extract"
	"task-management/pkg/openai"
)

// Transcribe validates the audio, converts it to text and extracts a task draft.
func (uc *implUseCase) Transcribe(ctx context.Context, sc model.Scope, input voice.TranscribeInput) (voice.TranscribeOutput, error) {
	a := input.Audio
	if err := uc.validateAudio(a); err != nil {
		uc.l.Warnf(ctx, "uc.Transcribe validateAudio: user=%s size=%d mime=%q: %v", sc.UserID, a.Size, a.MIME, err)
		return voice.TranscribeOutput{}, err
	}

	raw, err := uc.transcriber.Transcribe(ctx, openai.TranscribeRequest{
		Filename: a.Filename,
		Audio:    a.Data,
		Language: uc.language,
	})
	if err != nil {
		mapped := mapTranscriptionError(err)
		uc.l.Errorf(ctx, "uc.Transcribe transcriber.Transcribe: user=%s size=%d mime=%q: %v", sc.UserID, a.Size, a.MIME, err)
		return voice.TranscribeOutput{}, mapped
	}

	text, err := uc.checkTranscript(raw)
	if err != nil {
		return voice.TranscribeOutput{}, err
	}

	now := uc.now().In(uc.loc)
	drafted, err := uc.model.Extract(ctx, text, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Transcribe model.Extract: %v", err)
		return voice.TranscribeOutput{}, &voice.TranscriptError{Err: voice.ErrExtraction, Transcription: text}
	}

	draft := extract.Merge(drafted, extract.Rules(text, now))
	if !draft.HasContent() {
		return voice.TranscribeOutput{}, &voice.TranscriptError{Err: voice.ErrNoValidTaskInfo, Transcription: text}
	}

	return voice.TranscribeOutput{Transcription: text, Extracted: draft}, nil
}

// mapTranscriptionError turns a speech-to-text failure into a voice error.
func mapTranscriptionError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return voice.ErrTranscriptionService
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return voice.ErrTranscriptionService
	}

	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		return voice.ErrTranscriptionFormat
	case http.StatusRequestEntityTooLarge:
		return voice.ErrTranscriptionFileTooLarge
	case http.StatusTooManyRequests:
		return voice.ErrRateLimited
	case http.StatusUnauthorized:
		return voice.ErrAuthentication
	default:
		return voice.ErrTranscriptionService
	}
}
