package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/voice"
	"task-management/internal/voice/extract"
)

// Extract drafts a task from typed text. When the model pass fails the
// rule draft is returned on its own.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input voice.ExtractInput) (voice.ExtractOutput, error) {
	text, err := uc.checkTranscript(input.Text)
	if err != nil {
		return voice.ExtractOutput{}, err
	}

	now := uc.now().In(uc.loc)
	rules := extract.Rules(text, now)
	out := voice.ExtractOutput{
		Transcription: text,
		Rules:         rules,
		Extracted:     rules,
		Source:        voice.SourceRules,
	}

	drafted, err := uc.model.Extract(ctx, text, now)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Extract model.Extract: user=%s, falling back to rules: %v", sc.UserID, err)
	} else {
		out.Extracted = extract.Merge(drafted, rules)
		out.Source = voice.SourceModel
	}

	if !out.Extracted.HasContent() {
		return voice.ExtractOutput{}, &voice.TranscriptError{Err: voice.ErrNoValidTaskInfo, Transcription: text}
	}
	return out, nil
}
