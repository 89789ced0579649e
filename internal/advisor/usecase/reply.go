package usecase

import (
	"context"
	"fmt"
	"strings"

	"course-compass/internal/advisor"
	"course-compass/pkg/llmprovider"
)

// Reply runs one advising turn.
func (uc *implUseCase) Reply(ctx context.Context, input advisor.ReplyInput) (advisor.ReplyOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return advisor.ReplyOutput{}, advisor.ErrEmptyMessage
	}

	docs := uc.docs.Load(ctx)
	req := uc.buildRequest(docs, input.History, input.Text)

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: GenerateContent: %v", LogPrefixReply, err)
		return advisor.ReplyOutput{}, fmt.Errorf("%w: %w", advisor.ErrModelUnavailable, err)
	}
	if resp == nil {
		return advisor.ReplyOutput{}, advisor.ErrEmptyResponse
	}

	out := advisor.ReplyOutput{
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}

	calls, texts := splitParts(resp.Content.Parts)
	if len(calls) > 0 {
		pending, err := uc.decodeCalls(calls)
		if err != nil {
			uc.l.Warnf(ctx, "%s: %v", LogPrefixReply, err)
			return advisor.ReplyOutput{}, err
		}

		out.Actions, err = uc.dispatch(ctx, pending)
		if err != nil {
			return advisor.ReplyOutput{}, err
		}

		uc.l.Infof(ctx, "%s: executed %d action(s)", LogPrefixReply, len(out.Actions))
		out.Text = ConfirmationReply
		return out, nil
	}

	if len(texts) == 0 {
		uc.l.Warnf(ctx, "%s: model returned no text and no actions", LogPrefixReply)
		return advisor.ReplyOutput{}, advisor.ErrEmptyResponse
	}

	out.Text = strings.Join(texts, "\n")
	return out, nil
}

func splitParts(parts []llmprovider.Part) ([]*llmprovider.FunctionCall, []string) {
	var calls []*llmprovider.FunctionCall
	var texts []string
	for _, p := range parts {
		switch {
		case p.FunctionCall != nil:
			calls = append(calls, p.FunctionCall)
		case p.Text != "":
			texts = append(texts, p.Text)
		}
	}
	return calls, texts
}
