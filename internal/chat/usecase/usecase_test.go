package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"course-compass/internal/advisor"
	"course-compass/internal/chat"
	"course-compass/internal/chat/repository/memory"
	"course-compass/internal/model"
	"course-compass/pkg/log"
)

type mockAdvisor struct {
	mu     sync.Mutex
	reply  string
	err    error
	inputs []advisor.ReplyInput
}

func (m *mockAdvisor) Reply(ctx context.Context, in advisor.ReplyInput) (advisor.ReplyOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return advisor.ReplyOutput{}, m.err
	}
	return advisor.ReplyOutput{Text: m.reply + ":" + in.Text}, nil
}

func newTestUseCase(adv *mockAdvisor) chat.UseCase {
	l := log.NewNop()
	return New(memory.New(memory.Config{}, l), adv, l)
}

func TestSend_AppendsUserAndAssistantTurns(t *testing.T) {
	adv := &mockAdvisor{reply: "ok"}
	uc := newTestUseCase(adv)
	ctx := context.Background()

	start, err := uc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	out, err := uc.Send(ctx, chat.SendInput{SessionID: start.SessionID, Text: "  hello  "})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out.Failed || out.Reply != "ok:hello" {
		t.Fatalf("unexpected output %+v", out)
	}
	if len(out.Transcript) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(out.Transcript))
	}
	if out.Transcript[0].Role != model.RoleUser || out.Transcript[0].Text != "hello" {
		t.Errorf("unexpected user turn %+v", out.Transcript[0])
	}
	if out.Transcript[1].Role != model.RoleAssistant || out.Transcript[1].Text != "ok:hello" {
		t.Errorf("unexpected assistant turn %+v", out.Transcript[1])
	}

	if _, err := uc.Send(ctx, chat.SendInput{SessionID: start.SessionID, Text: "again"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := len(adv.inputs[1].History); got != 2 {
		t.Errorf("second turn should see 2 prior turns, got %d", got)
	}
}

func TestSend_FailureKeepsTranscript(t *testing.T) {
	adv := &mockAdvisor{reply: "ok"}
	uc := newTestUseCase(adv)
	ctx := context.Background()
	start, _ := uc.StartSession(ctx)

	if _, err := uc.Send(ctx, chat.SendInput{SessionID: start.SessionID, Text: "first"}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	adv.err = advisor.ErrModelUnavailable
	out, err := uc.Send(ctx, chat.SendInput{SessionID: start.SessionID, Text: "second"})
	if err != nil {
		t.Fatalf("failed turn must not return an error, got %v", err)
	}
	if !out.Failed || out.Reply != chat.FailureReply {
		t.Errorf("unexpected output %+v", out)
	}

	tr, err := uc.Transcript(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(tr.Transcript) != 2 {
		t.Errorf("transcript must be unchanged, got %d turns", len(tr.Transcript))
	}
}

func TestSend_Errors(t *testing.T) {
	uc := newTestUseCase(&mockAdvisor{})
	ctx := context.Background()
	start, _ := uc.StartSession(ctx)

	if _, err := uc.Send(ctx, chat.SendInput{SessionID: start.SessionID, Text: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := uc.Send(ctx, chat.SendInput{SessionID: "missing", Text: "hi"}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEndSession(t *testing.T) {
	uc := newTestUseCase(&mockAdvisor{})
	ctx := context.Background()
	start, _ := uc.StartSession(ctx)

	if err := uc.EndSession(ctx, start.SessionID); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if _, err := uc.Transcript(ctx, start.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.EndSession(ctx, start.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSend_SessionsAreIndependent(t *testing.T) {
	uc := newTestUseCase(&mockAdvisor{reply: "r"})
	ctx := context.Background()
	a, _ := uc.StartSession(ctx)
	b, _ := uc.StartSession(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _, _ = uc.Send(ctx, chat.SendInput{SessionID: a.SessionID, Text: "a"}) }()
		go func() { defer wg.Done(); _, _ = uc.Send(ctx, chat.SendInput{SessionID: b.SessionID, Text: "b"}) }()
	}
	wg.Wait()

	for _, id := range []string{a.SessionID, b.SessionID} {
		tr, err := uc.Transcript(ctx, id)
		if err != nil {
			t.Fatalf("Transcript: %v", err)
		}
		if len(tr.Transcript) != 20 {
			t.Errorf("session %s: expected 20 turns, got %d", id, len(tr.Transcript))
		}
		for i := 0; i < len(tr.Transcript); i += 2 {
			if tr.Transcript[i].Role != model.RoleUser || tr.Transcript[i+1].Role != model.RoleAssistant {
				t.Fatalf("session %s: turns out of order at %d", id, i)
			}
		}
	}
}
