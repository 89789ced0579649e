package advisor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply answers one user message given the prior transcript. Requested
	// ledger actions are applied before it returns.
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
}
