package chat

// Outcome classifies how a message was answered.
type Outcome int

const (
	// OutcomeReplied means the model answered and the reply was recorded.
	OutcomeReplied Outcome = iota
	// OutcomeFallback means the endpoint returned a non-success status.
	OutcomeFallback
	// OutcomeFailed means the call failed in transport or decoding.
	OutcomeFailed
	// OutcomeEmptyInput means the message was blank and nothing was sent.
	OutcomeEmptyInput
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReplied:
		return "replied"
	case OutcomeFallback:
		return "fallback"
	case OutcomeFailed:
		return "failed"
	case OutcomeEmptyInput:
		return "empty_input"
	default:
		return "unknown"
	}
}

// CompletionResult is either reply text or a typed failure.
// Err is set for OutcomeFailed and OutcomeEmptyInput.
type CompletionResult struct {
	Outcome Outcome
	Text    string
	Err     error
}

// ReplyInput is one inbound text message.
type ReplyInput struct {
	Text            string
	ConversationKey string // chat identity, used in per-chat scope
}

// ReplyOutput is what gets sent back to the sender.
type ReplyOutput struct {
	Text    string
	Outcome Outcome
}
