package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	roleSystem = "system"
	typeFunc   = "function"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request.
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(bodyBytes)}
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return transformResponse(&openAIResp), nil
}

// Model returns the model being used.
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest builds the wire request. Every text part of the system
// instruction becomes its own system message, in order.
func (o *openAIImpl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+4),
	}

	if req.SystemInstruction != nil {
		for _, part := range req.SystemInstruction.Parts {
			out.Messages = append(out.Messages, openAIMessage{Role: roleSystem, Content: part.Text})
		}
	}

	for i := range req.Messages {
		out.Messages = append(out.Messages, transformMessage(&req.Messages[i]))
	}

	if len(req.Tools) > 0 {
		out.Tools = make([]openAITool, len(req.Tools))
		for i, tool := range req.Tools {
			out.Tools[i] = openAITool{
				Type: typeFunc,
				Function: openAIFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
		out.ToolChoice = ToolChoiceAuto
	}

	return out
}

// transformMessage joins the text parts of one turn.
func transformMessage(msg *Content) openAIMessage {
	texts := make([]string, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return openAIMessage{Role: msg.Role, Content: strings.Join(texts, "\n")}
}

func transformResponse(resp *openAIResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0, len(choice.Message.ToolCalls)+1),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "" && toolCall.Type != typeFunc {
			continue
		}
		call := &FunctionCall{
			ID:   toolCall.ID,
			Name: toolCall.Function.Name,
			Args: map[string]interface{}{},
		}
		if strings.TrimSpace(toolCall.Function.Arguments) != "" {
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &call.Args); err != nil {
				call.Args = map[string]interface{}{}
				call.ArgsErr = fmt.Errorf("malformed arguments for %s: %w", toolCall.Function.Name, err)
			}
		}
		message.Parts = append(message.Parts, Part{FunctionCall: call})
	}

	return &Response{
		Content: message,
		Model:   resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}

func errorMessage(body []byte) string {
	var errResp openAIErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return strings.TrimSpace(string(body))
}
