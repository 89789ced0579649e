package usecase

import (
	"context"
	"fmt"

	"course-compass/internal/ledger"
)

// AppendInterest records a student asking for follow-up.
func (uc *implUseCase) AppendInterest(ctx context.Context, input ledger.InterestInput) (ledger.Ack, error) {
	entry := ledger.InterestEntry{
		Timestamp: uc.timestamp(),
		Email:     input.Email,
		Name:      input.Name,
		Message:   input.Message,
	}

	if err := uc.repo.Append(ctx, ledger.StudentsFile, ledger.StudentsHeader, entry.Record()); err != nil {
		uc.l.Errorf(ctx, "internal.ledger.usecase.AppendInterest: %v", err)
		return ledger.Ack{}, fmt.Errorf("%w: %w", ledger.ErrAppendFailed, err)
	}

	uc.l.Infof(ctx, "internal.ledger.usecase.AppendInterest: recorded interest at %s", entry.Timestamp)
	return ledger.Ack{OK: true, Timestamp: entry.Timestamp}, nil
}

// AppendFeedback records a question the model could not answer.
func (uc *implUseCase) AppendFeedback(ctx context.Context, input ledger.FeedbackInput) (ledger.Ack, error) {
	entry := ledger.FeedbackEntry{
		Timestamp: uc.timestamp(),
		Question:  input.Question,
		Notes:     ledger.FeedbackNote,
	}

	if err := uc.repo.Append(ctx, ledger.FeedbackFile, ledger.FeedbackHeader, entry.Record()); err != nil {
		uc.l.Errorf(ctx, "internal.ledger.usecase.AppendFeedback: %v", err)
		return ledger.Ack{}, fmt.Errorf("%w: %w", ledger.ErrAppendFailed, err)
	}

	uc.l.Infof(ctx, "internal.ledger.usecase.AppendFeedback: recorded feedback at %s", entry.Timestamp)
	return ledger.Ack{OK: true, Timestamp: entry.Timestamp}, nil
}
