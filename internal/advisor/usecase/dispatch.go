package usecase

import (
	"context"
	"fmt"

	"course-compass/internal/advisor"
	"course-compass/internal/agent"
	"course-compass/pkg/llmprovider"
)

type pendingAction struct {
	tool   agent.Tool
	action agent.Action
}

// decodeCalls validates every call before any runs. One bad call rejects the
// whole batch.
func (uc *implUseCase) decodeCalls(calls []*llmprovider.FunctionCall) ([]pendingAction, error) {
	pending := make([]pendingAction, 0, len(calls))
	for i, call := range calls {
		tool, ok := uc.registry.Get(call.Name)
		if !ok {
			return nil, fmt.Errorf("%w: call %d: %w: %s", advisor.ErrInvalidAction, i, agent.ErrToolNotFound, call.Name)
		}
		if call.ArgsErr != nil {
			return nil, fmt.Errorf("%w: call %d (%s): %w: %w", advisor.ErrInvalidAction, i, call.Name, agent.ErrInvalidArguments, call.ArgsErr)
		}
		action, err := tool.Decode(call.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: call %d (%s): %w", advisor.ErrInvalidAction, i, call.Name, err)
		}
		pending = append(pending, pendingAction{tool: tool, action: action})
	}
	return pending, nil
}

// dispatch runs the actions in order and stops at the first failure. Actions
// already applied stay applied.
func (uc *implUseCase) dispatch(ctx context.Context, pending []pendingAction) ([]agent.ActionKind, error) {
	done := make([]agent.ActionKind, 0, len(pending))
	for _, p := range pending {
		if _, err := p.tool.Execute(ctx, p.action); err != nil {
			uc.l.Errorf(ctx, "%s: %s failed after %d action(s): %v", LogPrefixDispatch, p.action.Kind(), len(done), err)
			return done, fmt.Errorf("%w: %s: %w", advisor.ErrActionFailed, p.action.Kind(), err)
		}
		done = append(done, p.action.Kind())
	}
	return done, nil
}
