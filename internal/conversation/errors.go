package conversation

import "errors"

var ErrInvalidScope = errors.New("conversation: invalid scope")
