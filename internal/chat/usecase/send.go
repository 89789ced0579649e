package usecase

import (
	"context"
	"strings"

	"course-compass/internal/advisor"
	"course-compass/internal/chat"
	"course-compass/internal/model"
	"course-compass/pkg/log"
)

// Send runs one user turn. A failed turn is not an error: the caller gets the
// apology reply with Failed set and the transcript stays as it was.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	s, err := uc.session(ctx, input.SessionID)
	if err != nil {
		return chat.SendOutput{}, err
	}
	ctx = log.WithSessionID(ctx, s.ID)

	done := s.BeginTurn()
	defer done()

	history := s.Snapshot()
	asked := uc.now().UTC()

	out, err := uc.advisor.Reply(ctx, advisor.ReplyInput{Text: text, History: history})
	if err != nil {
		uc.l.Warnf(ctx, "internal.chat.usecase.Send: turn failed: %v", err)
		return chat.SendOutput{
			Reply:      chat.FailureReply,
			Failed:     true,
			Transcript: history,
		}, nil
	}

	s.Append(
		model.Turn{Role: model.RoleUser, Text: text, At: asked},
		model.Turn{Role: model.RoleAssistant, Text: out.Text, At: uc.now().UTC()},
	)
	if len(out.Actions) > 0 {
		uc.l.Infof(ctx, "internal.chat.usecase.Send: %d action(s) recorded", len(out.Actions))
	}

	return chat.SendOutput{
		Reply:      out.Text,
		Transcript: s.Snapshot(),
	}, nil
}
