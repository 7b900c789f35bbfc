package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Transcribe uploads audio to /audio/transcriptions and returns the plain text.
func (o *openAIImpl) Transcribe(ctx context.Context, req TranscribeRequest) (string, error) {
	if req.Audio == nil {
		return "", fmt.Errorf("openai: audio is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := req.Filename
	if filename == "" {
		filename = "audio.webm"
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, req.Audio); err != nil {
		return "", fmt.Errorf("openai: failed to copy audio: %w", err)
	}

	fields := map[string]string{
		"model":           o.transcriptionModel,
		"response_format": "text",
		"language":        req.Language,
		"prompt":          req.Prompt,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("openai: failed to write field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("openai: failed to close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: transcription call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: failed to read transcription: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp.StatusCode, raw)
	}

	return strings.TrimSpace(string(raw)), nil
}
