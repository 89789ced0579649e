package repository

import "context"

// Repository stores append-only tables. A table is addressed by file name.
type Repository interface {
	// EnsureTable creates the table with header when it does not exist.
	EnsureTable(ctx context.Context, name string, header []string) error
	// Append adds one record. If the table is missing or empty the header is
	// written first, in the same write.
	Append(ctx context.Context, name string, header, record []string) error
	// ReadAll returns every row including the header.
	ReadAll(ctx context.Context, name string) ([][]string, error)
}
