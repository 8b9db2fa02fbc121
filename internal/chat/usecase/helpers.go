package usecase

import (
	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/pkg/completion"
)

func toMessages(entries []conversation.Entry) []completion.Message {
	msgs := make([]completion.Message, len(entries))
	for i, e := range entries {
		msgs[i] = completion.Message{Role: string(e.Role), Content: e.Content}
	}
	return msgs
}
