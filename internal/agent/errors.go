package agent

import "errors"

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidArguments = errors.New("invalid tool arguments")
	ErrActionMismatch   = errors.New("action does not belong to tool")
)
