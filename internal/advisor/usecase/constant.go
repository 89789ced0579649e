package usecase

// Log prefixes
const (
	LogPrefixReply    = "internal.advisor.usecase.Reply"
	LogPrefixDispatch = "internal.advisor.usecase.dispatch"
)

// DefaultTemperature keeps answers close to the catalog.
const DefaultTemperature = 0.2

// SystemPrompt is the fixed instruction block sent first on every turn.
const SystemPrompt = "You are AUB Compass, the official tutoring and course-advising assistant for the American University of Beirut (AUB). " +
	"You help students explore courses, understand prerequisites, plan study paths, and find tutoring help. " +
	"Keep your tone professional, encouraging, and factual. " +
	"If unsure, call record_feedback with the question. " +
	"If student seeks tutoring, call record_student_interest with their info."

// ConfirmationReply replaces the model text whenever actions were executed.
const ConfirmationReply = "Thanks! Your message was logged for follow-up."

const (
	summaryLabel  = "SUMMARY:\n"
	documentLabel = "PDF:\n"
)
