package model

import "time"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of a conversation transcript.
type Turn struct {
	Role Role      // who said it
	Text string    // what was said
	At   time.Time // when the turn was recorded (UTC)
}
