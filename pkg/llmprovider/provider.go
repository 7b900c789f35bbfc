package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int

	// ResponseSchema is a JSON Schema the answer must follow. Providers
	// that cannot enforce a schema fall back to plain JSON mode.
	ResponseSchema map[string]interface{}
	SchemaName     string
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant", "system"
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text returns the trimmed response text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Content.Text)
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
