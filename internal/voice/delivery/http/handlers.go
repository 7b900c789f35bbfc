package http

import (
	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
	"task-management/internal/voice"
	"task-management/pkg/response"
)

// Transcribe godoc
// @Summary     Transcribe a voice note
// @Description Transcribes an uploaded recording and extracts a task draft from it.
// @Description When extraction fails after transcription, the error body still carries the transcription.
// @Tags        Voice
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       audio formData file true "Recording (webm, mp4, mpeg, wav, ogg; 1KB to 25MB)"
// @Success     200 {object} response.Resp{data=transcribeResp}
// @Failure     400 {object} response.ErrorResp "Invalid audio or transcript"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     429 {object} response.ErrorResp "Rate limited"
// @Failure     500 {object} response.ErrorResp "Extraction failed"
// @Failure     503 {object} response.ErrorResp "Transcription service unavailable"
// @Router      /api/voice/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processTranscribeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "voice.delivery.http.Transcribe processTranscribeReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer req.close()

	output, err := h.uc.Transcribe(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "voice.delivery.http.Transcribe uc.Transcribe: size=%d mime=%s: %v", req.size, req.mime, err)
		response.ErrorWithTranscription(c, h.mapError(err), voice.TranscriptionOf(err))
		return
	}

	response.OK(c, h.newTranscribeResp(output))
}

// Extract godoc
// @Summary     Extract a task draft from text
// @Description Runs the rule pass and the model pass over a transcript without audio.
// @Description Falls back to the rule draft when the model is unavailable.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Transcript"
// @Success     200 {object} response.Resp{data=extractResp}
// @Failure     400 {object} response.ErrorResp "Invalid transcript"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     429 {object} response.ErrorResp "Rate limited"
// @Router      /api/voice/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "voice.delivery.http.Extract uc.Extract: %v", err)
		response.ErrorWithTranscription(c, h.mapError(err), voice.TranscriptionOf(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}
