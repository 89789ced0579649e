package chat

import (
	"time"

	"course-compass/internal/model"
)

// --- UseCase Inputs ---

type SendInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type StartSessionOutput struct {
	SessionID string
	CreatedAt time.Time
}

type SendOutput struct {
	Reply      string
	Failed     bool // the turn failed and Reply is the apology text
	Transcript []model.Turn
}

type TranscriptOutput struct {
	SessionID  string
	CreatedAt  time.Time
	Transcript []model.Turn
}
