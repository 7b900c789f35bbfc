package usecase

import (
	"mime"
	"strings"

	"task-management/internal/voice"
)

func (uc *implUseCase) validateAudio(a voice.Audio) error {
	if a.Data == nil {
		return voice.ErrNoAudioFile
	}
	if a.Size > uc.limits.MaxAudioBytes {
		return voice.ErrFileTooLarge
	}
	if a.Size < uc.limits.MinAudioBytes {
		return voice.ErrFileTooSmall
	}
	if !isAllowedMIME(a.MIME) {
		return voice.ErrUnsupportedFormat
	}
	return nil
}

// isAllowedMIME ignores parameters such as ";codecs=opus".
func isAllowedMIME(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	mediaType = strings.ToLower(mediaType)
	for _, allowed := range voice.AllowedMIMETypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// checkTranscript trims the transcript and enforces the length bounds in runes.
func (uc *implUseCase) checkTranscript(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", voice.ErrNoTranscription
	}
	n := len([]rune(text))
	if n < uc.limits.MinTranscription {
		return text, voice.ErrTranscriptionTooShort
	}
	if n > uc.limits.MaxTranscription {
		return text, voice.ErrTranscriptionTooLong
	}
	return text, nil
}
