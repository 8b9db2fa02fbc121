package usecase

import (
	"context"
	"strings"

	"telegram-llm-relay/internal/chat"
	"telegram-llm-relay/internal/model"
)

// Reply handles one inbound text message end to end.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input chat.ReplyInput) chat.ReplyOutput {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.ReplyOutput{Text: chat.EmptyInputPrompt, Outcome: chat.OutcomeEmptyInput}
	}

	uc.l.Infof(ctx, "Received message from user %s: %s", sc.UserID, text)

	store := uc.registry.Get(input.ConversationKey)
	result := uc.Complete(ctx, store, text)

	switch result.Outcome {
	case chat.OutcomeFailed:
		uc.l.Errorf(ctx, "chat.usecase.Reply: %v", result.Err)
		return chat.ReplyOutput{Text: chat.ApologyReply, Outcome: result.Outcome}
	default:
		return chat.ReplyOutput{Text: result.Text, Outcome: result.Outcome}
	}
}
