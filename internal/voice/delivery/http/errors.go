package http

import (
	"errors"
	"net/http"

	"task-management/internal/voice"
	pkgErrors "task-management/pkg/errors"
)

var errInvalidBody = errors.New("invalid body")

var (
	errNoAudioFile       = pkgErrors.NewHTTPError(http.StatusBadRequest, "NO_AUDIO_FILE", "no audio file uploaded")
	errFileTooLarge      = pkgErrors.NewHTTPError(http.StatusBadRequest, "FILE_TOO_LARGE", "audio file exceeds 25MB")
	errFileTooSmall      = pkgErrors.NewHTTPError(http.StatusBadRequest, "FILE_TOO_SMALL", "audio file is too small, please record again")
	errUnsupportedFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported audio format")

	errTranscriptionFormat  = pkgErrors.NewHTTPError(http.StatusBadRequest, "TRANSCRIPTION_FORMAT_ERROR", "the transcription service rejected the audio format")
	errTranscriptionTooBig  = pkgErrors.NewHTTPError(http.StatusBadRequest, "TRANSCRIPTION_FILE_TOO_LARGE", "the transcription service rejected the audio size")
	errRateLimited          = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests, please retry later")
	errAuthentication       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "AUTHENTICATION_ERROR", "transcription service authentication failed")
	errTranscriptionService = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "TRANSCRIPTION_SERVICE_ERROR", "transcription service unavailable, please retry later")

	errNoTranscription = pkgErrors.NewHTTPError(http.StatusBadRequest, "NO_TRANSCRIPTION_RESULT", "no speech recognized")
	errTooShort        = pkgErrors.NewHTTPError(http.StatusBadRequest, "TRANSCRIPTION_TOO_SHORT", "recognized text is too short")
	errTooLong         = pkgErrors.NewHTTPError(http.StatusBadRequest, "TRANSCRIPTION_TOO_LONG", "recognized text is too long")
	errNoValidTaskInfo = pkgErrors.NewHTTPError(http.StatusBadRequest, "NO_VALID_TASK_INFO", "no task found in the recording")
	errExtraction      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "EXTRACTION_ERROR", "failed to extract a task, please edit it manually")
)

// mapError translates voice errors into the wire taxonomy.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidBody):
		return pkgErrors.ErrInvalidBody
	case errors.Is(err, voice.ErrNoAudioFile):
		return errNoAudioFile
	case errors.Is(err, voice.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, voice.ErrFileTooSmall):
		return errFileTooSmall
	case errors.Is(err, voice.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, voice.ErrTranscriptionFormat):
		return errTranscriptionFormat
	case errors.Is(err, voice.ErrTranscriptionFileTooLarge):
		return errTranscriptionTooBig
	case errors.Is(err, voice.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, voice.ErrAuthentication):
		return errAuthentication
	case errors.Is(err, voice.ErrTranscriptionService):
		return errTranscriptionService
	case errors.Is(err, voice.ErrNoTranscription):
		return errNoTranscription
	case errors.Is(err, voice.ErrTranscriptionTooShort):
		return errTooShort
	case errors.Is(err, voice.ErrTranscriptionTooLong):
		return errTooLong
	case errors.Is(err, voice.ErrNoValidTaskInfo):
		return errNoValidTaskInfo
	case errors.Is(err, voice.ErrExtraction):
		return errExtraction
	default:
		return pkgErrors.ErrUnknown
	}
}
