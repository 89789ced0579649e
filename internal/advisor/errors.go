package advisor

import "errors"

var (
	ErrEmptyMessage     = errors.New("empty message")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrEmptyResponse    = errors.New("empty model response")
	ErrInvalidAction    = errors.New("invalid action")
	ErrActionFailed     = errors.New("action failed")
)
