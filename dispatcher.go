package nexthire

import (
	"sync"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

type EventHandler func(e *Event) error

type dispatcherHandler struct {
	c DispatchConditions
	h EventHandler
}

type Dispatcher struct {
	hs []dispatcherHandler
	m  *sync.Mutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{m: &sync.Mutex{}}
}

type DispatchConditions struct {
	Name *string
	To   *Identifier
}

func (c DispatchConditions) match(e *Event) bool {
	// Check name
	if c.Name != nil && *c.Name != e.Name {
		return false
	}

	// Check to
	if c.To != nil {
		// No to in event
		if e.To == nil {
			return false
		}

		// Check type
		if c.To.Type != e.To.Type {
			return false
		}

		// Check name
		if c.To.Name != nil && (e.To.Name == nil || *c.To.Name != *e.To.Name) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) Dispatch(e *Event) {
	// Lock
	d.m.Lock()
	defer d.m.Unlock()

	// Loop through handlers
	for _, h := range d.hs {
		// No match
		if !h.c.match(e) {
			continue
		}

		// Handle in a goroutine so that it's non blocking
		go func(h EventHandler) {
			if err := h(e); err != nil {
				astilog.Error(errors.Wrap(err, "nexthire: handling event failed"))
				return
			}
		}(h.h)
	}
}

func (d *Dispatcher) On(c DispatchConditions, h EventHandler) {
	d.m.Lock()
	defer d.m.Unlock()
	d.hs = append(d.hs, dispatcherHandler{
		c: c,
		h: h,
	})
}
