package servicecontext

import "errors"

var (
	ErrWriteSummary  = errors.New("failed to write service summary")
	ErrWriteDocument = errors.New("failed to write service document")
)
