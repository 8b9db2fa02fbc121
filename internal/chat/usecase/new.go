package usecase

import (
	"telegram-llm-relay/internal/chat"
	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/pkg/completion"
	pkgLog "telegram-llm-relay/pkg/log"
)

var _ chat.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l           pkgLog.Logger
	llm         completion.IClient
	registry    *conversation.Registry
	temperature float64
	maxTokens   int
}

// Options carries the generation parameters sent with every request.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns temperature 0.5 and a 200 token cap.
func DefaultOptions() Options {
	return Options{
		Temperature: chat.DefaultTemperature,
		MaxTokens:   chat.DefaultMaxTokens,
	}
}

// New creates a new chat UseCase instance. opts is used as given, so a
// temperature of 0 is sent as 0.
func New(
	l pkgLog.Logger,
	llm completion.IClient,
	registry *conversation.Registry,
	opts Options,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		registry:    registry,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}
}
