package usecase

import (
	"time"

	"course-compass/internal/advisor"
	"course-compass/internal/chat"
	"course-compass/internal/chat/repository"
	"course-compass/pkg/log"
)

type implUseCase struct {
	repo    repository.Repository
	advisor advisor.UseCase
	l       log.Logger
	now     func() time.Time
}

// New creates a new chat UseCase.
func New(repo repository.Repository, adv advisor.UseCase, l log.Logger) chat.UseCase {
	return &implUseCase{
		repo:    repo,
		advisor: adv,
		l:       l,
		now:     time.Now,
	}
}
