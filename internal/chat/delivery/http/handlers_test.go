package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"course-compass/internal/advisor"
	"course-compass/internal/chat"
	"course-compass/internal/chat/repository/memory"
	chatUC "course-compass/internal/chat/usecase"
	"course-compass/pkg/log"
)

type stubAdvisor struct {
	err error
}

func (s stubAdvisor) Reply(ctx context.Context, in advisor.ReplyInput) (advisor.ReplyOutput, error) {
	if s.err != nil {
		return advisor.ReplyOutput{}, s.err
	}
	return advisor.ReplyOutput{Text: "CMPS 270 requires CMPS 200."}, nil
}

type turnBody struct {
	Role string `json:"role"`
	Text string `json:"text"`
	At   string `json:"at"`
}

type sessionBody struct {
	SessionID  string     `json:"session_id"`
	CreatedAt  string     `json:"created_at"`
	Reply      string     `json:"reply"`
	Failed     bool       `json:"failed"`
	Transcript []turnBody `json:"transcript"`
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(adv advisor.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := chatUC.New(memory.New(memory.Config{}, l), adv, l)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w, env
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start: status %d", w.Code)
	}
	var s sessionBody
	if err := json.Unmarshal(env.Data, &s); err != nil || s.SessionID == "" {
		t.Fatalf("start: bad payload %s", env.Data)
	}
	return s.SessionID
}

func TestChatFlow(t *testing.T) {
	r := newTestRouter(stubAdvisor{})
	id := startSession(t, r)

	w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages", map[string]string{"text": "What are the prerequisites for CMPS 270?"})
	if w.Code != http.StatusOK {
		t.Fatalf("send: status %d body %s", w.Code, w.Body.String())
	}
	var sent sessionBody
	_ = json.Unmarshal(env.Data, &sent)
	if sent.Failed || sent.Reply != "CMPS 270 requires CMPS 200." {
		t.Errorf("unexpected send payload %+v", sent)
	}
	if len(sent.Transcript) != 2 || sent.Transcript[0].Role != "user" || sent.Transcript[1].Role != "assistant" {
		t.Errorf("unexpected transcript %+v", sent.Transcript)
	}

	w, env = do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("transcript: status %d", w.Code)
	}
	var tr sessionBody
	_ = json.Unmarshal(env.Data, &tr)
	if tr.SessionID != id || len(tr.Transcript) != 2 || tr.CreatedAt == "" || tr.Transcript[0].At == "" {
		t.Errorf("unexpected transcript payload %+v", tr)
	}

	w, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("end: status %d", w.Code)
	}

	w, env = do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after end, got %d", w.Code)
	}
	if env.Message != chat.ErrSessionNotFound.Error() {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestSend_Validation(t *testing.T) {
	r := newTestRouter(stubAdvisor{})
	id := startSession(t, r)

	tests := []struct {
		name string
		path string
		body interface{}
		code int
	}{
		{name: "missing text", path: "/api/v1/chat/sessions/" + id + "/messages", body: map[string]string{}, code: http.StatusBadRequest},
		{name: "blank text", path: "/api/v1/chat/sessions/" + id + "/messages", body: map[string]string{"text": "   "}, code: http.StatusBadRequest},
		{name: "unknown session", path: "/api/v1/chat/sessions/nope/messages", body: map[string]string{"text": "hi"}, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(t, r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.code {
				t.Errorf("expected %d, got %d (%s)", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestSend_AdvisorFailure(t *testing.T) {
	r := newTestRouter(stubAdvisor{err: advisor.ErrModelUnavailable})
	id := startSession(t, r)

	w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages", map[string]string{"text": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with failed reply, got %d", w.Code)
	}
	var sent sessionBody
	_ = json.Unmarshal(env.Data, &sent)
	if !sent.Failed || sent.Reply != chat.FailureReply || len(sent.Transcript) != 0 {
		t.Errorf("unexpected payload %+v", sent)
	}
}
