package llmprovider

import (
	"context"

	"course-compass/pkg/gemini"
	"course-compass/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface. The same
// adapter serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible endpoint
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		Temperature:       req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	var usage *Usage
	if resp.Usage != nil {
		usage = convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)
	} else {
		usage = &Usage{}
	}

	return &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		ProviderName: a.name,
		ModelName:    model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertUsage(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for OpenAI-compatible endpoints
func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToOpenAIContent(&msgs[i])
	}
	return contents
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return out
}

func convertFromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:      p.FunctionCall.ID,
				Name:    p.FunctionCall.Name,
				Args:    p.FunctionCall.Args,
				ArgsErr: p.FunctionCall.ArgsErr,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
