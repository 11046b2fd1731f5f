package capture

import "sync"

// Control is the flag set shared between the capture loop and an external
// stop signal. It's only ever read or written under its lock. Once set,
// stopRequested is never cleared within the same recording.
type Control struct {
	m             *sync.Mutex
	recording     bool
	stopRequested bool
}

func NewControl() *Control {
	return &Control{m: &sync.Mutex{}}
}

// RequestStop signals the capture loop to stop at the next chunk boundary.
// It reports whether a recording was in progress.
func (c *Control) RequestStop() bool {
	c.m.Lock()
	defer c.m.Unlock()
	if !c.recording {
		return false
	}
	c.stopRequested = true
	return true
}

func (c *Control) Recording() bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.recording
}

func (c *Control) stopRequestedFlag() bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.stopRequested
}

// begin fails when a recording is already in progress: the physical input
// device is exclusive to one capture at a time.
func (c *Control) begin() bool {
	c.m.Lock()
	defer c.m.Unlock()
	if c.recording {
		return false
	}
	c.recording = true
	c.stopRequested = false
	return true
}

func (c *Control) end() {
	c.m.Lock()
	defer c.m.Unlock()
	c.recording = false
}
