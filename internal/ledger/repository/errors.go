package repository

import "errors"

var (
	ErrTableNotFound = errors.New("table not found")
	ErrEmptyRecord   = errors.New("empty record")
)
