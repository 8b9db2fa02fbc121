package completion

import (
	"errors"
	"fmt"
)

var (
	ErrModelRequired = errors.New("completion: model is required")
	ErrNoChoices     = errors.New("completion: response has no choices")
)

// StatusError is returned when the endpoint answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion: API error %d: %s", e.StatusCode, e.Body)
}
