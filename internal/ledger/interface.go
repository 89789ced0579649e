package ledger

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureInitialized creates the ledger directory and any missing file
	// with its header row. Existing files are left alone.
	EnsureInitialized(ctx context.Context) error
	AppendInterest(ctx context.Context, input InterestInput) (Ack, error)
	AppendFeedback(ctx context.Context, input FeedbackInput) (Ack, error)
}
