package completion

import "context"

// IClient defines the interface for an OpenAI-compatible chat completion API.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateChatCompletion posts req to <base URL>/chat/completions.
	// A non-200 status is reported as *StatusError.
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model identifier.
	Model() string
}

// New creates a new completion client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
