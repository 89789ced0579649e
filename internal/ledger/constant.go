package ledger

import "time"

const (
	StudentsFile = "students.csv"
	FeedbackFile = "feedback.csv"

	// FeedbackNote annotates every feedback row.
	FeedbackNote = "model didn't know"

	// TimestampLayout is the ISO-8601 layout of the first column.
	TimestampLayout = time.RFC3339Nano
)

var (
	StudentsHeader = []string{"ts_iso", "email", "name", "message"}
	FeedbackHeader = []string{"ts_iso", "question", "notes"}
)
