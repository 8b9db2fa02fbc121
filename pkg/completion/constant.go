package completion

import "time"

const (
	// DefaultBaseURL is LM Studio's local OpenAI-compatible endpoint.
	DefaultBaseURL = "http://localhost:1234/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// Message roles understood by chat completion endpoints.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
