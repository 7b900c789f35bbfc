package http

import (
	"mime/multipart"
	"strings"

	"task-management/internal/voice"
	"task-management/internal/voice/extract"
)

// --- Request DTOs ---

type transcribeReq struct {
	filename string
	mime     string
	size     int64
	file     multipart.File
}

func (r transcribeReq) toInput() voice.TranscribeInput {
	return voice.TranscribeInput{
		Audio: voice.Audio{
			Filename: r.filename,
			MIME:     r.mime,
			Size:     r.size,
			Data:     r.file,
		},
	}
}

func (r transcribeReq) close() {
	if r.file != nil {
		_ = r.file.Close()
	}
}

type extractReq struct {
	Text string `json:"text"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return voice.ErrNoTranscription
	}
	return nil
}

func (r extractReq) toInput() voice.ExtractInput {
	return voice.ExtractInput{Text: r.Text}
}

// --- Response DTOs ---

type transcribeResp struct {
	Transcription string        `json:"transcription"`
	Extracted     extract.Draft `json:"extracted"`
	Success       bool          `json:"success"`
}

func (h *handler) newTranscribeResp(out voice.TranscribeOutput) transcribeResp {
	return transcribeResp{
		Transcription: out.Transcription,
		Extracted:     out.Extracted,
		Success:       true,
	}
}

type extractResp struct {
	Transcription string        `json:"transcription"`
	Extracted     extract.Draft `json:"extracted"`
	Rules         extract.Draft `json:"rules"`
	Source        string        `json:"source"`
	Success       bool          `json:"success"`
}

func (h *handler) newExtractResp(out voice.ExtractOutput) extractResp {
	return extractResp{
		Transcription: out.Transcription,
		Extracted:     out.Extracted,
		Rules:         out.Rules,
		Source:        out.Source,
		Success:       true,
	}
}
