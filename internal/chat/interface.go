package chat

import (
	"context"

	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/internal/model"
)

// UseCase defines the business logic interface for the chat relay.
type UseCase interface {
	// Reply turns one inbound text into the text sent back to the sender.
	// Every outcome, failures included, resolves to a friendly string.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput) ReplyOutput

	// Complete appends userText to store, asks the model, and appends the
	// reply on success. userText must already be trimmed and non-empty.
	Complete(ctx context.Context, store *conversation.Store, userText string) CompletionResult
}
