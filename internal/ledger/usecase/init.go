package usecase

import (
	"context"
	"fmt"

	"course-compass/internal/ledger"
)

// EnsureInitialized creates both ledger files when missing.
func (uc *implUseCase) EnsureInitialized(ctx context.Context) error {
	tables := []struct {
		name   string
		header []string
	}{
		{ledger.StudentsFile, ledger.StudentsHeader},
		{ledger.FeedbackFile, ledger.FeedbackHeader},
	}

	for _, t := range tables {
		if err := uc.repo.EnsureTable(ctx, t.name, t.header); err != nil {
			uc.l.Errorf(ctx, "internal.ledger.usecase.EnsureInitialized: %s: %v", t.name, err)
			return fmt.Errorf("%w: %w", ledger.ErrInitFailed, err)
		}
	}
	return nil
}
