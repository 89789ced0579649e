package tools

import (
	"context"
	"fmt"

	"course-compass/internal/agent"
	"course-compass/internal/ledger"
	"course-compass/pkg/log"
)

// RecordStudentInterestTool stores a student's contact details for follow-up.
type RecordStudentInterestTool struct {
	uc ledger.UseCase
	l  log.Logger
}

// NewRecordStudentInterestTool creates the student interest tool.
func NewRecordStudentInterestTool(uc ledger.UseCase, l log.Logger) agent.Tool {
	return &RecordStudentInterestTool{uc: uc, l: l}
}

func (t *RecordStudentInterestTool) Name() string {
	return string(KindStudentInterest)
}

func (t *RecordStudentInterestTool) Description() string {
	return "Store student info for follow-up."
}

func (t *RecordStudentInterestTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"email":   stringProperty(),
			"name":    stringProperty(),
			"message": stringProperty(),
		},
		"required": []string{"email", "name", "message"},
	}
}

func (t *RecordStudentInterestTool) Decode(args map[string]interface{}) (agent.Action, error) {
	var a StudentInterest
	if err := decodeArgs(args, []string{"email", "name", "message"}, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func (t *RecordStudentInterestTool) Execute(ctx context.Context, action agent.Action) (interface{}, error) {
	a, ok := action.(StudentInterest)
	if !ok {
		return nil, fmt.Errorf("%w: %s got %T", agent.ErrActionMismatch, t.Name(), action)
	}

	ack, err := t.uc.AppendInterest(ctx, ledger.InterestInput{
		Email:   a.Email,
		Name:    a.Name,
		Message: a.Message,
	})
	if err != nil {
		t.l.Errorf(ctx, "internal.agent.tools.RecordStudentInterest: %v", err)
		return nil, err
	}
	return ack, nil
}
