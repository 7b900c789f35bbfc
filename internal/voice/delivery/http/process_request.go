package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-management/internal/voice"
)

// formAudioField is the multipart field holding the recording.
const formAudioField = "audio"

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 1 << 20

func (h *handler) processTranscribeReq(c *gin.Context) (transcribeReq, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile(formAudioField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return transcribeReq{}, voice.ErrFileTooLarge
		}
		return transcribeReq{}, voice.ErrNoAudioFile
	}

	return openAudio(fh)
}

func openAudio(fh *multipart.FileHeader) (transcribeReq, error) {
	req := transcribeReq{
		filename: fh.Filename,
		mime:     fh.Header.Get("Content-Type"),
		size:     fh.Size,
	}
	if fh.Size <= 0 {
		return req, voice.ErrNoAudioFile
	}

	f, err := fh.Open()
	if err != nil {
		return req, voice.ErrNoAudioFile
	}
	req.file = f
	return req, nil
}

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}
