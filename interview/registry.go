package interview

import (
	"sync"

	nexthire "github.com/nexthire/go-nexthire"
)

// DefaultSessionID is the session the HTTP front door pins when the caller
// doesn't provide one, preserving the original single-interview behavior.
const DefaultSessionID = "default"

// Registry holds sessions keyed by id.
type Registry struct {
	m  *sync.Mutex
	ss map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		m:  &sync.Mutex{},
		ss: make(map[string]*Session),
	}
}

// Session returns the session registered under id.
func (r *Registry) Session(id string) (s *Session, ok bool) {
	r.m.Lock()
	defer r.m.Unlock()
	s, ok = r.ss[id]
	return
}

// create registers a fresh idle session under id. An idle or concluded
// session under the same id is replaced; an active one is not, since its
// state would be lost.
func (r *Registry) create(id string) (s *Session, err error) {
	r.m.Lock()
	defer r.m.Unlock()
	if p, ok := r.ss[id]; ok && p.Status() == nexthire.ActiveStatus {
		err = nexthire.NewUsageError("interview: session %s is active, end it before starting a new one", id)
		return
	}
	s = newSession(id)
	r.ss[id] = s
	return
}
