package ledger

// --- UseCase Inputs ---

type InterestInput struct {
	Email   string
	Name    string
	Message string
}

type FeedbackInput struct {
	Question string
}

// --- Rows ---

// InterestEntry is one row of the students ledger.
type InterestEntry struct {
	Timestamp string
	Email     string
	Name      string
	Message   string
}

// Record returns the row in column order.
func (e InterestEntry) Record() []string {
	return []string{e.Timestamp, e.Email, e.Name, e.Message}
}

// FeedbackEntry is one row of the feedback ledger.
type FeedbackEntry struct {
	Timestamp string
	Question  string
	Notes     string
}

// Record returns the row in column order.
func (e FeedbackEntry) Record() []string {
	return []string{e.Timestamp, e.Question, e.Notes}
}

// --- UseCase Outputs ---

// Ack confirms an append.
type Ack struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"ts"`
}
