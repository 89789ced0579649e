package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const roleAssistant = "assistant"

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{client: client, model: cfg.Model}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for i := range req.Messages {
		contents = append(contents, toGenAIContent(&req.Messages[i]))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, buildConfig(req))
	if err != nil {
		return nil, wrapError(err)
	}

	return fromGenAIResponse(resp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = toGenAIContent(req.SystemInstruction)
		cfg.SystemInstruction.Role = ""
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(req.Tools))
		for i, tool := range req.Tools {
			decls[i] = &genai.FunctionDeclaration{
				Name:                 tool.Name,
				Description:          tool.Description,
				ParametersJsonSchema: tool.Parameters,
			}
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}
	return cfg
}

// toGenAIContent maps a message to the SDK type. Gemini names the assistant
// role "model".
func toGenAIContent(msg *Content) *genai.Content {
	role := msg.Role
	if role == roleAssistant {
		role = genai.RoleModel
	}

	parts := make([]*genai.Part, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		parts = append(parts, &genai.Part{Text: p.Text})
	}

	return &genai.Content{Role: role, Parts: parts}
}

func fromGenAIResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{
		Content: Content{Role: roleAssistant},
		Usage:   &Usage{},
	}
	if resp == nil {
		return out
	}

	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil {
			continue
		}
		if p.FunctionCall != nil {
			args := p.FunctionCall.Args
			if args == nil {
				args = map[string]interface{}{}
			}
			out.Content.Parts = append(out.Content.Parts, Part{FunctionCall: &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: args,
			}})
			continue
		}
		if p.Text != "" && !p.Thought {
			out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
		}
	}

	return out
}

func wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &APIError{StatusCode: apiErrPtr.Code, Message: apiErrPtr.Message}
	}
	return fmt.Errorf("gemini: API call failed: %w", err)
}
