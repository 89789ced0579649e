package usecase

import (
	"time"

	"course-compass/internal/ledger"
	"course-compass/internal/ledger/repository"
	"course-compass/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a ledger UseCase backed by repo.
func New(repo repository.Repository, l log.Logger) ledger.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

func (uc *implUseCase) timestamp() string {
	return uc.now().UTC().Format(ledger.TimestampLayout)
}
