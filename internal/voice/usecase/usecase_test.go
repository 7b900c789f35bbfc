package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"task-management/internal/model"
	"task-management/internal/voice"
	"task-management/internal/voice/extract"
	"task-management/pkg/llmprovider"
	"task-management/pkg/log"
	"task-management/pkg/openai"
)

type fakeTranscriber struct {
	text  string
	err   error
	calls int
	req   openai.TranscribeRequest
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req openai.TranscribeRequest) (string, error) {
	f.calls++
	f.req = req
	return f.text, f.err
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Text: f.text}}, nil
}

var (
	testScope = model.Scope{UserID: "user-1"}
	shanghai  = mustLocation("Asia/Shanghai")
	fixedNow  = time.Date(2024, 5, 10, 9, 30, 0, 0, shanghai)
)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestUseCase(tr voice.Transcriber, gen extract.Generator) *implUseCase {
	uc := New(log.NewNop(), tr, extract.NewLLM(gen), Config{
		Limits:   voice.DefaultLimits(),
		Language: "zh",
		Location: shanghai,
	})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func audio(size int64, mime string) voice.Audio {
	return voice.Audio{
		Filename: "note.webm",
		MIME:     mime,
		Size:     size,
		Data:     bytes.NewReader(make([]byte, 8)),
	}
}

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestTranscribe_AudioValidation(t *testing.T) {
	tests := []struct {
		name  string
		audio voice.Audio
		want  error
	}{
		{name: "missing", audio: voice.Audio{}, want: voice.ErrNoAudioFile},
		{name: "too large", audio: audio(25*1024*1024+1, "audio/webm"), want: voice.ErrFileTooLarge},
		{name: "too small", audio: audio(1023, "audio/webm"), want: voice.ErrFileTooSmall},
		{name: "bad mime", audio: audio(4096, "video/mp4"), want: voice.ErrUnsupportedFormat},
		{name: "empty mime", audio: audio(4096, ""), want: voice.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranscriber{text: "明天开会"}
			uc := newTestUseCase(tr, &fakeGenerator{})

			_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: tt.audio})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tr.calls != 0 {
				t.Errorf("transcriber must not be called on invalid audio")
			}
		})
	}
}

func TestTranscribe_UpstreamErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: 400, want: voice.ErrTranscriptionFormat},
		{status: 413, want: voice.ErrTranscriptionFileTooLarge},
		{status: 429, want: voice.ErrRateLimited},
		{status: 401, want: voice.ErrAuthentication},
		{status: 500, want: voice.ErrTranscriptionService},
	}

	for _, tt := range tests {
		tr := &fakeTranscriber{err: &openai.APIError{StatusCode: tt.status}}
		uc := newTestUseCase(tr, &fakeGenerator{})

		_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/webm;codecs=opus")})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: expected %v, got %v", tt.status, tt.want, err)
		}
	}

	tr := &fakeTranscriber{err: errors.New("connection reset")}
	uc := newTestUseCase(tr, &fakeGenerator{})
	_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/ogg")})
	if !errors.Is(err, voice.ErrTranscriptionService) {
		t.Errorf("network failure: expected service error, got %v", err)
	}
}

func TestTranscribe_TranscriptChecks(t *testing.T) {
	long := make([]rune, 1001)
	for i := range long {
		long[i] = '字'
	}

	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "empty", text: "   ", want: voice.ErrNoTranscription},
		{name: "one rune", text: "嗯", want: voice.ErrTranscriptionTooShort},
		{name: "too long", text: string(long), want: voice.ErrTranscriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeTranscriber{text: tt.text}, &fakeGenerator{})
			_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/wav")})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTranscribe_Success(t *testing.T) {
	tr := &fakeTranscriber{text: " 今天下午三点前提交项目周报，优先级高 "}
	gen := &fakeGenerator{text: `{"title":"提交项目周报","description":"下午三点前","priority":"high","category":"work","deadline":null}`}
	uc := newTestUseCase(tr, gen)

	out, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/webm")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.req.Language != "zh" || tr.req.Filename != "note.webm" {
		t.Errorf("unexpected transcription request: %+v", tr.req)
	}
	if out.Transcription != "今天下午三点前提交项目周报，优先级高" {
		t.Errorf("unexpected transcription: %q", out.Transcription)
	}
	if deref(out.Extracted.Title) != "提交项目周报" {
		t.Errorf("model title should win, got %q", deref(out.Extracted.Title))
	}
	if deref(out.Extracted.Priority) != "high" {
		t.Errorf("expected high priority, got %q", deref(out.Extracted.Priority))
	}
	if deref(out.Extracted.Deadline) != "2024-05-10" {
		t.Errorf("rule deadline should fill the gap, got %q", deref(out.Extracted.Deadline))
	}
}

func TestTranscribe_ExtractionFailureKeepsTranscript(t *testing.T) {
	uc := newTestUseCase(&fakeTranscriber{text: "明天开会"}, &fakeGenerator{err: llmprovider.ErrAllProvidersFailed})

	_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/mpeg")})
	if !errors.Is(err, voice.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if voice.TranscriptionOf(err) != "明天开会" {
		t.Errorf("expected transcript on error, got %q", voice.TranscriptionOf(err))
	}
}

func TestTranscribe_NoValidTaskInfo(t *testing.T) {
	uc := newTestUseCase(&fakeTranscriber{text: "优先级高"}, &fakeGenerator{text: `{"title":null,"description":null,"priority":"high","category":null,"deadline":null}`})

	_, err := uc.Transcribe(context.Background(), testScope, voice.TranscribeInput{Audio: audio(4096, "audio/mp4")})
	if !errors.Is(err, voice.ErrNoValidTaskInfo) {
		t.Fatalf("expected no valid task info, got %v", err)
	}
	if voice.TranscriptionOf(err) != "优先级高" {
		t.Errorf("expected transcript on error, got %q", voice.TranscriptionOf(err))
	}
}

func TestExtract(t *testing.T) {
	t.Run("model and rules", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeGenerator{text: `{"title":"开会","priority":"medium","category":"work"}`})
		out, err := uc.Extract(context.Background(), testScope, voice.ExtractInput{Text: "明天开会"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != voice.SourceModel {
			t.Errorf("expected model source, got %s", out.Source)
		}
		if deref(out.Extracted.Title) != "开会" || deref(out.Extracted.Deadline) != "2024-05-11" {
			t.Errorf("unexpected draft: %s", out.Extracted)
		}
		if deref(out.Rules.Title) != "明天开会" {
			t.Errorf("unexpected rule draft: %s", out.Rules)
		}
	})

	t.Run("model failure falls back to rules", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeGenerator{err: errors.New("boom")})
		out, err := uc.Extract(context.Background(), testScope, voice.ExtractInput{Text: "明天开会"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != voice.SourceRules {
			t.Errorf("expected rules source, got %s", out.Source)
		}
		if deref(out.Extracted.Deadline) != "2024-05-11" {
			t.Errorf("unexpected deadline: %q", deref(out.Extracted.Deadline))
		}
	})

	t.Run("too short", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeGenerator{})
		_, err := uc.Extract(context.Background(), testScope, voice.ExtractInput{Text: "a"})
		if !errors.Is(err, voice.ErrTranscriptionTooShort) {
			t.Errorf("expected too short, got %v", err)
		}
	})
}
