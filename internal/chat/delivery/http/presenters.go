package http

import (
	"strings"

	"course-compass/internal/chat"
	"course-compass/internal/model"
	"course-compass/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"required"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Role string            `json:"role"`
	Text string            `json:"text"`
	At   response.DateTime `json:"at"`
}

type startResp struct {
	SessionID string            `json:"session_id"`
	CreatedAt response.DateTime `json:"created_at"`
}

type sendResp struct {
	Reply      string     `json:"reply"`
	Failed     bool       `json:"failed"`
	Transcript []turnResp `json:"transcript"`
}

type transcriptResp struct {
	SessionID  string            `json:"session_id"`
	CreatedAt  response.DateTime `json:"created_at"`
	Transcript []turnResp        `json:"transcript"`
}

func (h *handler) newStartResp(o chat.StartSessionOutput) startResp {
	return startResp{
		SessionID: o.SessionID,
		CreatedAt: response.DateTime(o.CreatedAt),
	}
}

func (h *handler) newSendResp(o chat.SendOutput) sendResp {
	return sendResp{
		Reply:      o.Reply,
		Failed:     o.Failed,
		Transcript: newTurnsResp(o.Transcript),
	}
}

func (h *handler) newTranscriptResp(o chat.TranscriptOutput) transcriptResp {
	return transcriptResp{
		SessionID:  o.SessionID,
		CreatedAt:  response.DateTime(o.CreatedAt),
		Transcript: newTurnsResp(o.Transcript),
	}
}

func newTurnsResp(turns []model.Turn) []turnResp {
	out := make([]turnResp, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnResp{
			Role: string(t.Role),
			Text: t.Text,
			At:   response.DateTime(t.At),
		})
	}
	return out
}
