package usecase

import (
	"context"
	"errors"
	"strings"

	"telegram-llm-relay/internal/chat"
	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/pkg/completion"
)

// Complete appends the user turn, calls the completion endpoint with the
// whole history, and records the assistant turn on success.
//
// On a non-success status the user turn stays unanswered in history and is
// resent with every later request.
func (uc *implUseCase) Complete(ctx context.Context, store *conversation.Store, userText string) chat.CompletionResult {
	if strings.TrimSpace(userText) == "" {
		return chat.CompletionResult{Outcome: chat.OutcomeEmptyInput, Text: chat.EmptyInputPrompt, Err: chat.ErrEmptyInput}
	}

	store.Append(conversation.Entry{Role: conversation.RoleUser, Content: userText})

	resp, err := uc.llm.CreateChatCompletion(ctx, &completion.Request{
		Model:       uc.llm.Model(),
		Messages:    toMessages(store.Snapshot()),
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		var statusErr *completion.StatusError
		if errors.As(err, &statusErr) {
			uc.l.Errorf(ctx, "chat.usecase.Complete: completion endpoint returned %d: %s",
				statusErr.StatusCode, statusErr.Body)
			return chat.CompletionResult{Outcome: chat.OutcomeFallback, Text: chat.FallbackReply}
		}
		uc.l.Errorf(ctx, "chat.usecase.Complete: request to completion endpoint failed: %v", err)
		return chat.CompletionResult{Outcome: chat.OutcomeFailed, Err: err}
	}

	reply, ok := resp.FirstText()
	if !ok {
		uc.l.Errorf(ctx, "chat.usecase.Complete: completion endpoint returned no choices")
		return chat.CompletionResult{Outcome: chat.OutcomeFailed, Err: completion.ErrNoChoices}
	}
	store.Append(conversation.Entry{Role: conversation.RoleAssistant, Content: reply})

	uc.l.Debug(ctx, "chat.usecase.Complete: reply recorded",
		"model", uc.llm.Model(),
		"history_len", store.Len(),
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return chat.CompletionResult{Outcome: chat.OutcomeReplied, Text: reply}
}
