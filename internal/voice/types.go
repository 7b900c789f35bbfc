package voice

import (
	"io"

	"task-management/internal/voice/extract"
)

// Draft sources reported by Extract.
const (
	SourceModel = "model"
	SourceRules = "rules"
)

// Audio is one uploaded recording.
type Audio struct {
	Filename string
	MIME     string
	Size     int64
	Data     io.Reader
}

type TranscribeInput struct {
	Audio Audio
}

type TranscribeOutput struct {
	Transcription string
	Extracted     extract.Draft
}

type ExtractInput struct {
	Text string
}

type ExtractOutput struct {
	Transcription string
	Extracted     extract.Draft
	Rules         extract.Draft
	Source        string
}

// Limits bounds accepted audio and transcripts.
type Limits struct {
	MinAudioBytes    int64
	MaxAudioBytes    int64
	MinTranscription int
	MaxTranscription int
}

// DefaultLimits returns the production bounds.
func DefaultLimits() Limits {
	return Limits{
		MinAudioBytes:    1024,
		MaxAudioBytes:    25 * 1024 * 1024,
		MinTranscription: 2,
		MaxTranscription: 1000,
	}
}

// AllowedMIMETypes lists the accepted audio formats.
var AllowedMIMETypes = []string{"audio/webm", "audio/mp4", "audio/mpeg", "audio/wav", "audio/ogg"}
