package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyInput = errors.New("input text is empty")
)
