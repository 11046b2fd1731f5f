package nexthire

import "time"

// Roles
const (
	CandidateRole   = "candidate"
	InterviewerRole = "interviewer"
)

// Session statuses
const (
	ActiveStatus    = "active"
	ConcludedStatus = "concluded"
	IdleStatus      = "idle"
)

// Turn represents one utterance of the interview. Turns are immutable once
// appended to a session.
type Turn struct {
	CreatedAt time.Time `json:"created_at"`
	Index     int       `json:"index"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
}
