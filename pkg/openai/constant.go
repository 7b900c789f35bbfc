package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o"

	// DefaultTranscriptionModel is the default speech-to-text model
	DefaultTranscriptionModel = "whisper-1"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Response formats for structured output. Compatible vendors such as
// DeepSeek and Qwen only accept FormatJSONObject.
const (
	FormatJSONSchema = "json_schema"
	FormatJSONObject = "json_object"
)
