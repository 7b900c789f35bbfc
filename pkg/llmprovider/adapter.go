package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"task-management/pkg/gemini"
	"task-management/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	// Request schemas are JSON Schema; Gemini only accepts its OpenAPI
	// subset, so structured requests use plain JSON mode.
	geminiReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.ResponseSchema != nil,
		Messages:    make([]gemini.Content, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text}},
		}
	}
	for i, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		geminiReq.Messages[i] = gemini.Content{Role: role, Parts: []gemini.Part{{Text: msg.Text}}}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		switch {
		case errors.As(err, &apiErr):
			return nil, classifyStatus(a.Name(), apiErr.StatusCode, err)
		case errors.Is(err, gemini.ErrBlocked):
			return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: %v", ErrInvalidRequest, err)}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: "assistant", Text: resp.Text()},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same client serves every OpenAI-compatible vendor, so the adapter
// carries the configured provider name.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting the given provider name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		ResponseSchema: req.ResponseSchema,
		SchemaName:     req.SchemaName,
		Messages:       make([]openai.Content, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		openaiReq.SystemInstruction = &openai.Content{Role: "system", Text: req.SystemInstruction.Text}
	}
	for i, msg := range req.Messages {
		openaiReq.Messages[i] = openai.Content{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.name, apiErr.StatusCode, err)
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      Message{Role: "assistant", Text: resp.Content.Text},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
