package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:             cfg.APIKey,
		baseURL:            cfg.BaseURL,
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		responseFormat:     cfg.ResponseFormat,
		httpClient:         cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, newAPIError(resp.StatusCode, raw)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return transformResponse(&chatResp), nil
}

// Model returns the chat model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	temperature := req.Temperature
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    "system",
			Content: req.SystemInstruction.Text,
		})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" || role == "model" {
			role = roleFor(role)
		}
		chatReq.Messages = append(chatReq.Messages, chatMessage{Role: role, Content: msg.Text})
	}

	if req.ResponseSchema != nil {
		if o.responseFormat == FormatJSONObject {
			chatReq.ResponseFormat = &responseFormat{Type: FormatJSONObject}
		} else {
			name := req.SchemaName
			if name == "" {
				name = "response"
			}
			chatReq.ResponseFormat = &responseFormat{
				Type: FormatJSONSchema,
				JSONSchema: &jsonSchema{
					Name:   name,
					Strict: true,
					Schema: req.ResponseSchema,
				},
			}
		}
	}

	return chatReq
}

func roleFor(role string) string {
	if role == "model" {
		return "assistant"
	}
	return "user"
}

func transformResponse(resp *chatResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	if len(resp.Choices) == 0 {
		return &Response{Usage: usage}
	}

	msg := resp.Choices[0].Message
	return &Response{
		Content: Content{Role: msg.Role, Text: msg.Content},
		Usage:   usage,
	}
}
