package servicecontext

import "time"

// Profile describes the advising service.
type Profile struct {
	Name       string
	Mission    string
	Services   []string
	Team       []TeamMember
	ValueProps []string
	Contact    string
	Copyright  string
	IssuedAt   time.Time // stamped into the PDF metadata
}

// TeamMember is one member of the service staff.
type TeamMember struct {
	Name string
	Bio  string
}

// Documents is the static context handed to the model on every turn.
type Documents struct {
	Summary      string
	DocumentText string
}
