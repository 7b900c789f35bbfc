package openai

import (
	"fmt"
	"io"
	"net/http"
)

// Config holds client configuration
type Config struct {
	APIKey             string
	Model              string
	TranscriptionModel string
	BaseURL            string
	ResponseFormat     string
	HTTPClient         *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TranscriptionModel == "" {
		c.TranscriptionModel = DefaultTranscriptionModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	switch c.ResponseFormat {
	case "":
		c.ResponseFormat = FormatJSONSchema
	case FormatJSONSchema, FormatJSONObject:
	default:
		return fmt.Errorf("openai: unsupported response format %q", c.ResponseFormat)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type openAIImpl struct {
	apiKey             string
	baseURL            string
	model              string
	transcriptionModel string
	responseFormat     string
	httpClient         *http.Client
}

// Request represents a chat completion request
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int

	// ResponseSchema, when set, asks for a JSON object matching the schema.
	ResponseSchema map[string]interface{}
	SchemaName     string
}

// Content represents a message
type Content struct {
	Role string
	Text string
}

// Response represents a chat completion response
type Response struct {
	Content Content
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TranscribeRequest describes one audio upload.
type TranscribeRequest struct {
	Filename string
	Audio    io.Reader
	Language string
	Prompt   string
}

// Wire types for /chat/completions.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

type jsonSchema struct {
	Name   string                 `json:"name"`
	Strict bool                   `json:"strict"`
	Schema map[string]interface{} `json:"schema"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
