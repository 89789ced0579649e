package ledger

import "errors"

var (
	ErrAppendFailed = errors.New("ledger append failed")
	ErrInitFailed   = errors.New("ledger init failed")
)
