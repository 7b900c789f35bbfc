package voice

import "errors"

var (
	// Audio validation
	ErrNoAudioFile       = errors.New("no audio file")
	ErrFileTooLarge      = errors.New("audio file too large")
	ErrFileTooSmall      = errors.New("audio file too small")
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// Speech-to-text service
	ErrTranscriptionFormat       = errors.New("transcription rejected audio format")
	ErrTranscriptionFileTooLarge = errors.New("transcription rejected audio size")
	ErrRateLimited               = errors.New("transcription rate limited")
	ErrAuthentication            = errors.New("transcription authentication failed")
	ErrTranscriptionService      = errors.New("transcription service unavailable")

	// Transcript checks
	ErrNoTranscription       = errors.New("no transcription result")
	ErrTranscriptionTooShort = errors.New("transcription too short")
	ErrTranscriptionTooLong  = errors.New("transcription too long")

	// Extraction
	ErrExtraction      = errors.New("task extraction failed")
	ErrNoValidTaskInfo = errors.New("no valid task info")
)

// TranscriptError carries the recognized text along with a failure that
// happened after transcription, so the caller does not lose it.
type TranscriptError struct {
	Err           error
	Transcription string
}

func (e *TranscriptError) Error() string {
	return e.Err.Error()
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// TranscriptionOf returns the transcript attached to err, or "".
func TranscriptionOf(err error) string {
	var te *TranscriptError
	if errors.As(err, &te) {
		return te.Transcription
	}
	return ""
}
