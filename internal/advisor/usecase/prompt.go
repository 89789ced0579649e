package usecase

import (
	"course-compass/internal/model"
	"course-compass/internal/servicecontext"
	"course-compass/pkg/llmprovider"
)

// buildRequest assembles the model request: instructions, summary, document
// text and catalog as system parts, then the history, then the new message.
func (uc *implUseCase) buildRequest(docs servicecontext.Documents, history []model.Turn, text string) *llmprovider.Request {
	system := &llmprovider.Message{
		Role: "system",
		Parts: []llmprovider.Part{
			{Text: SystemPrompt},
			{Text: summaryLabel + docs.Summary},
			{Text: documentLabel + docs.DocumentText},
			{Text: uc.catalog},
		},
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llmprovider.Message{
			Role:  string(turn.Role),
			Parts: []llmprovider.Part{{Text: turn.Text}},
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:  string(model.RoleUser),
		Parts: []llmprovider.Part{{Text: text}},
	})

	return &llmprovider.Request{
		SystemInstruction: system,
		Messages:          messages,
		Tools:             uc.registry.ToFunctionDefinitions(),
		Temperature:       uc.temperature,
	}
}
