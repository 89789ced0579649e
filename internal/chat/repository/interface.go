package repository

import (
	"context"

	"course-compass/internal/chat"
)

// Repository holds live sessions.
type Repository interface {
	Create(ctx context.Context) (*chat.Session, error)
	// Get returns the session and resets its idle timer.
	Get(ctx context.Context, id string) (*chat.Session, error)
	Delete(ctx context.Context, id string) error
	Len() int
}
