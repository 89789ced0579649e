package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"course-compass/pkg/gemini"
)

func newTestClient(t *testing.T, h http.HandlerFunc) gemini.IGemini {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := gemini.New(context.Background(), gemini.Config{
		APIKey:  "test-api-key",
		Model:   "gemini-test",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(context.Background(), gemini.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGenerateContent_Text(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "CMPS 270 needs CMPS 200."}]}}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`))
	})

	resp, err := c.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be helpful"}}},
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hi"}}},
			{Role: "assistant", Parts: []gemini.Part{{Text: "hello"}}},
			{Role: "user", Parts: []gemini.Part{{Text: "prereqs?"}}},
		},
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "CMPS 270 needs CMPS 200." {
		t.Errorf("unexpected parts: %+v", resp.Content.Parts)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}

	contents, _ := body["contents"].([]interface{})
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	second, _ := contents[1].(map[string]interface{})
	if second["role"] != "model" {
		t.Errorf("assistant role should be sent as model, got %v", second["role"])
	}
}

func TestGenerateContent_FunctionCalls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [
			{"functionCall": {"name": "record_feedback", "args": {"question": "q"}}},
			{"functionCall": {"name": "record_student_interest", "args": {"email": "a@b.c", "name": "A", "message": "m"}}}
		]}}]}`))
	})

	resp, err := c.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "x"}}}},
		Tools:    []gemini.Tool{{Name: "record_feedback", Parameters: map[string]interface{}{"type": "object"}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if len(resp.Content.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(resp.Content.Parts))
	}
	if fc := resp.Content.Parts[0].FunctionCall; fc == nil || fc.Name != "record_feedback" || fc.Args["question"] != "q" {
		t.Errorf("unexpected first call: %+v", fc)
	}
	if fc := resp.Content.Parts[1].FunctionCall; fc == nil || fc.Name != "record_student_interest" {
		t.Errorf("unexpected second call: %+v", fc)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}}`))
	})

	_, err := c.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "x"}}}},
	})

	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", apiErr.StatusCode)
	}
}
