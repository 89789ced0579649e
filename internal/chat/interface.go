package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	StartSession(ctx context.Context) (StartSessionOutput, error)
	Send(ctx context.Context, input SendInput) (SendOutput, error)
	Transcript(ctx context.Context, sessionID string) (TranscriptOutput, error)
	EndSession(ctx context.Context, sessionID string) error
}
