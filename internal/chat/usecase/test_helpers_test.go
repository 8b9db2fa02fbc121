package usecase

import (
	"context"

	"telegram-llm-relay/pkg/completion"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock completion client for testing
type mockCompletionClient struct {
	response *completion.Response
	err      error
	calls    int
	requests []completion.Request
}

func (m *mockCompletionClient) CreateChatCompletion(ctx context.Context, req *completion.Request) (*completion.Response, error) {
	m.calls++
	m.requests = append(m.requests, *req)
	return m.response, m.err
}

func (m *mockCompletionClient) Model() string {
	return "test-model"
}

func textResponse(text string) *completion.Response {
	return &completion.Response{
		Choices: []completion.Choice{
			{Message: completion.Message{Role: completion.RoleAssistant, Content: text}},
		},
	}
}
