package usecase

import (
	"context"
	"errors"
	"fmt"

	"course-compass/internal/chat"
	"course-compass/internal/chat/repository"
	"course-compass/pkg/log"
)

func (uc *implUseCase) StartSession(ctx context.Context) (chat.StartSessionOutput, error) {
	s, err := uc.repo.Create(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.StartSession: %v", err)
		return chat.StartSessionOutput{}, err
	}

	uc.l.Infof(log.WithSessionID(ctx, s.ID), "internal.chat.usecase.StartSession: session created, %d live", uc.repo.Len())
	return chat.StartSessionOutput{SessionID: s.ID, CreatedAt: s.CreatedAt}, nil
}

func (uc *implUseCase) Transcript(ctx context.Context, sessionID string) (chat.TranscriptOutput, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return chat.TranscriptOutput{}, err
	}
	return chat.TranscriptOutput{
		SessionID:  s.ID,
		CreatedAt:  s.CreatedAt,
		Transcript: s.Snapshot(),
	}, nil
}

func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	if err := uc.repo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "internal.chat.usecase.EndSession: %v", err)
		return err
	}

	uc.l.Infof(log.WithSessionID(ctx, sessionID), "internal.chat.usecase.EndSession: session ended")
	return nil
}

func (uc *implUseCase) session(ctx context.Context, id string) (*chat.Session, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, chat.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}
