package http

import (
	"task-management/internal/voice"
	"task-management/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       voice.UseCase
	maxBytes int64
}

// New creates the voice HTTP handler. maxAudioBytes caps the multipart body.
func New(l log.Logger, uc voice.UseCase, maxAudioBytes int64) *handler {
	if maxAudioBytes <= 0 {
		maxAudioBytes = voice.DefaultLimits().MaxAudioBytes
	}
	return &handler{
		l:        l,
		uc:       uc,
		maxBytes: maxAudioBytes,
	}
}
