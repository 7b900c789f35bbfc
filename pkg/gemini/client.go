package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-goog-api-key"
)

var (
	// ErrBlocked is returned when the prompt is rejected by safety filters.
	ErrBlocked = errors.New("gemini: prompt blocked")
	// ErrNoCandidates is returned when the answer carries no candidate.
	ErrNoCandidates = errors.New("gemini: no candidates in response")
)

// APIError is returned when the API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

// Client generates content with one Gemini model. Safe for concurrent use.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

type client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// New validates cfg and returns a client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

func (c *client) Model() string {
	return c.model
}

// GenerateContent calls models/{model}:generateContent.
func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return parseResponse(wire)
}

func buildRequest(req *Request) wireRequest {
	out := wireRequest{Contents: make([]wireContent, len(req.Messages))}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &wireContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		out.Contents[i] = wireContent{Role: msg.Role, Parts: toWireParts(msg.Parts)}
	}

	// Temperature is always sent so an explicit zero is not dropped.
	temperature := req.Temperature
	out.GenerationConfig = &wireGenerationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.JSONMode || req.ResponseSchema != nil {
		out.GenerationConfig.ResponseMIMEType = "application/json"
		out.GenerationConfig.ResponseSchema = req.ResponseSchema
	}
	return out
}

func toWireParts(parts []Part) []wirePart {
	out := make([]wirePart, len(parts))
	for i, p := range parts {
		out[i] = wirePart{Text: p.Text}
	}
	return out
}

func parseResponse(wire wireResponse) (*Response, error) {
	if wire.PromptFeedback != nil && wire.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, wire.PromptFeedback.BlockReason)
	}
	if len(wire.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	usage := &Usage{}
	if m := wire.UsageMetadata; m != nil {
		usage.InputTokens = m.PromptTokenCount
		usage.OutputTokens = m.CandidatesTokenCount
		usage.TotalTokens = m.TotalTokenCount
	}

	cand := wire.Candidates[0]
	parts := make([]Part, len(cand.Content.Parts))
	for i, p := range cand.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Content{Role: cand.Content.Role, Parts: parts},
		FinishReason: cand.FinishReason,
		Usage:        usage,
	}, nil
}
