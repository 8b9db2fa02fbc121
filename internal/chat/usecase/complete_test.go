package usecase

import (
	"context"
	"errors"
	"testing"

	"telegram-llm-relay/internal/chat"
	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/pkg/completion"
)

func TestComplete(t *testing.T) {
	transportErr := errors.New("dial tcp: timeout")

	tests := []struct {
		name        string
		response    *completion.Response
		err         error
		wantOutcome chat.Outcome
		wantText    string
		wantLen     int
	}{
		{"success grows by two", textResponse("\nreply\n"), nil, chat.OutcomeReplied, "reply", 3},
		{"status error grows by one", nil, &completion.StatusError{StatusCode: 404}, chat.OutcomeFallback, chat.FallbackReply, 2},
		{"no choices is a failure", nil, completion.ErrNoChoices, chat.OutcomeFailed, "", 2},
		{"transport error is a failure", nil, transportErr, chat.OutcomeFailed, "", 2},
		{"nil response is a failure", nil, nil, chat.OutcomeFailed, "", 2},
		{"empty choices is a failure", &completion.Response{}, nil, chat.OutcomeFailed, "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockCompletionClient{response: tt.response, err: tt.err}
			uc, _ := newTestUseCase(t, llm)
			store := conversation.NewStore(conversation.DefaultSystemPrompt)

			res := uc.Complete(context.Background(), store, "question")

			if res.Outcome != tt.wantOutcome {
				t.Errorf("outcome = %v, want %v", res.Outcome, tt.wantOutcome)
			}
			if res.Text != tt.wantText {
				t.Errorf("text = %q, want %q", res.Text, tt.wantText)
			}
			if store.Len() != tt.wantLen {
				t.Errorf("history len = %d, want %d", store.Len(), tt.wantLen)
			}
			wantErr := tt.err
			if wantErr == nil {
				wantErr = completion.ErrNoChoices
			}
			if tt.wantOutcome == chat.OutcomeFailed && !errors.Is(res.Err, wantErr) {
				t.Errorf("err = %v, want %v", res.Err, tt.err)
			}
			if got := store.Snapshot()[1]; got.Role != conversation.RoleUser || got.Content != "question" {
				t.Errorf("user entry = %+v", got)
			}
		})
	}
}

func TestNew_GenerationOptions(t *testing.T) {
	llm := &mockCompletionClient{response: textResponse("x")}
	reg, _ := conversation.NewRegistry(conversation.RegistryConfig{})
	uc := New(&mockLogger{}, llm, reg, Options{Temperature: 0.9, MaxTokens: 64})

	uc.Complete(context.Background(), conversation.NewStore("s"), "hi")

	if llm.requests[0].Temperature != 0.9 || llm.requests[0].MaxTokens != 64 {
		t.Errorf("request = %+v", llm.requests[0])
	}
}

func TestNew_ZeroTemperatureIsSent(t *testing.T) {
	llm := &mockCompletionClient{response: textResponse("x")}
	reg, _ := conversation.NewRegistry(conversation.RegistryConfig{})
	uc := New(&mockLogger{}, llm, reg, Options{Temperature: 0, MaxTokens: 200})

	uc.Complete(context.Background(), conversation.NewStore("s"), "hi")

	if llm.requests[0].Temperature != 0 {
		t.Errorf("temperature = %v, want 0", llm.requests[0].Temperature)
	}
}

func TestDefaultOptions(t *testing.T) {
	if got := DefaultOptions(); got.Temperature != 0.5 || got.MaxTokens != 200 {
		t.Errorf("DefaultOptions() = %+v", got)
	}
}

func TestComplete_BlankTextLeavesHistoryAlone(t *testing.T) {
	llm := &mockCompletionClient{response: textResponse("x")}
	uc, _ := newTestUseCase(t, llm)
	store := conversation.NewStore("s")

	res := uc.Complete(context.Background(), store, "  ")

	if res.Outcome != chat.OutcomeEmptyInput || !errors.Is(res.Err, chat.ErrEmptyInput) {
		t.Errorf("unexpected result: %+v", res)
	}
	if store.Len() != 1 || llm.calls != 0 {
		t.Errorf("history len %d, calls %d", store.Len(), llm.calls)
	}
}
