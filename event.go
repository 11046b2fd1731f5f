package nexthire

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Identifier types
const (
	ServerIdentifierType = "server"
	UIIdentifierType     = "ui"
)

// Event names
const (
	CmdUIPingEvent             = "cmd.ui.ping"
	EventCaptureStartedEvent   = "event.capture.started"
	EventCaptureStoppedEvent   = "event.capture.stopped"
	EventSessionConcludedEvent = "event.session.concluded"
	EventSessionStartedEvent   = "event.session.started"
	EventTurnCompletedEvent    = "event.turn.completed"
	EventUIDisconnectedEvent   = "event.ui.disconnected"
	EventUIWelcomeEvent        = "event.ui.welcome"
)

type Event struct {
	From    Identifier      `json:"from"`
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
	To      *Identifier     `json:"to,omitempty"`
}

type Identifier struct {
	Name *string `json:"name,omitempty"`
	Type string  `json:"type"`
}

func NewServerIdentifier() *Identifier { return &Identifier{Type: ServerIdentifierType} }

func NewUIIdentifier(name string) *Identifier {
	return &Identifier{
		Name: &name,
		Type: UIIdentifierType,
	}
}

func NewEvent() *Event {
	return &Event{}
}

func newEvent(from Identifier, to *Identifier, name string) *Event {
	e := NewEvent()
	e.From = from
	e.Name = name
	e.To = to
	return e
}

type WelcomeUI struct {
	Name string `json:"name"`
}

func NewEventUIWelcomeEvent(from Identifier, to *Identifier, name string) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventUIWelcomeEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(WelcomeUI{Name: name}); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

func NewEventUIDisconnectedEvent(from Identifier, to *Identifier, name string) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventUIDisconnectedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(name); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

func ParseEventUIDisconnectedPayload(e *Event) (name string, err error) {
	// Check name
	if e.Name != EventUIDisconnectedEvent {
		err = fmt.Errorf("nexthire: invalid name %s, requested %s", e.Name, EventUIDisconnectedEvent)
		return
	}

	// Unmarshal
	if err = json.Unmarshal(e.Payload, &name); err != nil {
		err = errors.Wrap(err, "nexthire: unmarshaling failed")
	}
	return
}

type SessionStarted struct {
	Question       string `json:"question"`
	QuestionNumber int    `json:"question_number"`
	SessionID      string `json:"session_id"`
}

func NewEventSessionStartedEvent(from Identifier, to *Identifier, s SessionStarted) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventSessionStartedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(s); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

type TurnCompleted struct {
	AIResponse      string `json:"ai_response"`
	CandidateAnswer string `json:"candidate_answer"`
	InterviewEnd    bool   `json:"interview_end"`
	QuestionNumber  int    `json:"question_number"`
	SessionID       string `json:"session_id"`
}

func NewEventTurnCompletedEvent(from Identifier, to *Identifier, t TurnCompleted) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventTurnCompletedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(t); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

func NewEventSessionConcludedEvent(from Identifier, to *Identifier, sessionID string) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventSessionConcludedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(sessionID); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

func NewEventCaptureStartedEvent(from Identifier, to *Identifier, sessionID string) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventCaptureStartedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(sessionID); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}

func NewEventCaptureStoppedEvent(from Identifier, to *Identifier, sessionID string) (e *Event, err error) {
	// Create event
	e = newEvent(from, to, EventCaptureStoppedEvent)

	// Marshal payload
	if e.Payload, err = json.Marshal(sessionID); err != nil {
		err = errors.Wrap(err, "nexthire: marshaling payload failed")
		return
	}
	return
}
