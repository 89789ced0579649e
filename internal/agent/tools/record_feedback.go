package tools

import (
	"context"
	"fmt"

	"course-compass/internal/agent"
	"course-compass/internal/ledger"
	"course-compass/pkg/log"
)

// RecordFeedbackTool logs questions the model could not answer.
type RecordFeedbackTool struct {
	uc ledger.UseCase
	l  log.Logger
}

// NewRecordFeedbackTool creates the feedback tool.
func NewRecordFeedbackTool(uc ledger.UseCase, l log.Logger) agent.Tool {
	return &RecordFeedbackTool{uc: uc, l: l}
}

func (t *RecordFeedbackTool) Name() string {
	return string(KindFeedback)
}

func (t *RecordFeedbackTool) Description() string {
	return "Log unanswered question."
}

func (t *RecordFeedbackTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": stringProperty(),
		},
		"required": []string{"question"},
	}
}

func (t *RecordFeedbackTool) Decode(args map[string]interface{}) (agent.Action, error) {
	var a Feedback
	if err := decodeArgs(args, []string{"question"}, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func (t *RecordFeedbackTool) Execute(ctx context.Context, action agent.Action) (interface{}, error) {
	a, ok := action.(Feedback)
	if !ok {
		return nil, fmt.Errorf("%w: %s got %T", agent.ErrActionMismatch, t.Name(), action)
	}

	ack, err := t.uc.AppendFeedback(ctx, ledger.FeedbackInput{Question: a.Question})
	if err != nil {
		t.l.Errorf(ctx, "internal.agent.tools.RecordFeedback: %v", err)
		return nil, err
	}
	return ack, nil
}
