package advisor

import (
	"course-compass/internal/agent"
	"course-compass/internal/model"
)

// --- UseCase Inputs ---

type ReplyInput struct {
	Text    string
	History []model.Turn
}

// --- UseCase Outputs ---

type ReplyOutput struct {
	Text     string
	Actions  []agent.ActionKind // executed actions, in order
	Provider string
	Model    string
}
