package interview

import (
	"sync"
	"time"

	nexthire "github.com/nexthire/go-nexthire"
)

// Stubbed in tests
var timeNow = time.Now

// Session owns the conversation state of one interview: its status, its
// turn number and the ordered, append-only log of turns. All fields are
// guarded by one mutex; turns are immutable once appended.
type Session struct {
	id            string
	listening     bool
	m             *sync.Mutex
	resumeContext string
	status        string
	turnNumber    int
	turns         []nexthire.Turn
}

func newSession(id string) *Session {
	return &Session{
		id:     id,
		m:      &sync.Mutex{},
		status: nexthire.IdleStatus,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Status() string {
	s.m.Lock()
	defer s.m.Unlock()
	return s.status
}

func (s *Session) TurnNumber() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.turnNumber
}

// History returns a copy of the ordered turn log.
func (s *Session) History() (ts []nexthire.Turn) {
	s.m.Lock()
	defer s.m.Unlock()
	ts = make([]nexthire.Turn, len(s.turns))
	copy(ts, s.turns)
	return
}

func (s *Session) ResumeContext() string {
	s.m.Lock()
	defer s.m.Unlock()
	return s.resumeContext
}

// setContext stores the resume context. It may only be called before any
// turn has been appended: swapping the resume mid-interview would invalidate
// the framing of prior turns.
func (s *Session) setContext(resumeContext string) error {
	s.m.Lock()
	defer s.m.Unlock()
	if len(s.turns) > 0 {
		return nexthire.NewUsageError("interview: session %s already has turns, context can't be updated", s.id)
	}
	s.resumeContext = resumeContext
	return nil
}

// append adds a turn with the provided role and text at the current turn
// number. It's the only mutator of the turn log.
func (s *Session) append(role, text string) nexthire.Turn {
	s.m.Lock()
	defer s.m.Unlock()
	t := nexthire.Turn{
		CreatedAt: timeNow(),
		Index:     s.turnNumber,
		Role:      role,
		Text:      text,
	}
	s.turns = append(s.turns, t)
	return t
}
