package openai

import "context"

// IOpenAI defines the client for OpenAI and OpenAI-compatible APIs.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Transcribe converts an audio file to text
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)

	// Model returns the chat model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
